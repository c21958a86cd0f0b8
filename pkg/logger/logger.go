package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// SimpleLogger é uma implementação simples de Logger que formata os pares
// chave/valor como chave=valor
type SimpleLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	warnLogger  *log.Logger
}

// NewLogger cria uma nova instância de Logger
func NewLogger() Logger {
	return &SimpleLogger{
		infoLogger:  log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime),
		errorLogger: log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime),
		debugLogger: log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime),
		warnLogger:  log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime),
	}
}

func formatPairs(keysAndValues []interface{}) string {
	if len(keysAndValues) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		key := keysAndValues[i]
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, " %v=%v", key, keysAndValues[i+1])
		} else {
			fmt.Fprintf(&b, " %v=?", key)
		}
	}
	return b.String()
}

// Info registra uma mensagem de informação
func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	l.infoLogger.Print(msg + formatPairs(keysAndValues))
}

// Error registra uma mensagem de erro
func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	l.errorLogger.Print(msg + formatPairs(keysAndValues))
}

// Debug registra uma mensagem de debug
func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.debugLogger.Print(msg + formatPairs(keysAndValues))
}

// Warn registra uma mensagem de aviso
func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.warnLogger.Print(msg + formatPairs(keysAndValues))
}
