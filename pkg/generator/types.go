package generator

// 利用統計で送信する呼び出し元の識別子
const (
	telemetryFile  = "generator.go"
	telemetryClass = "AvatarGenerator"
)
