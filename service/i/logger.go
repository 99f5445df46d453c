package i

// Logger is the levelled logger services report through.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
