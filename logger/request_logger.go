package logger

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type severity int

const (
	severityDebug severity = iota
	severityInfo
	severityWarning
	severityError
	severityCritical
)

func (s severity) String() string {
	switch s {
	case severityDebug:
		return "debug"
	case severityInfo:
		return "info"
	case severityWarning:
		return "warning"
	case severityError:
		return "error"
	case severityCritical:
		return "critical"
	}

	return "unknown"
}

// Logger stores the needed functionality to print a log.
type Logger struct {
	trace    string
	started  time.Time
	severity severity
	labels   map[string]string
}

func newDefaultLogger() *Logger {
	now := time.Now()
	id, _ := uuid.NewRandom()

	return &Logger{
		started: now,
		trace:   getTrace(now, id.String()),
		labels:  make(map[string]string),
	}
}

// Trace returns the trace stored in logger.
func (l *Logger) Trace() string {
	return l.trace
}

// SetLabel allows to optionally specify key/value labels for log entry.
func (l *Logger) SetLabel(key, value string) {
	l.labels[key] = value
}

// SetLabels allows to optionally add additional labels for log entry.
func (l *Logger) SetLabels(labels map[string]string) {
	for key, value := range labels {
		l.SetLabel(key, value)
	}
}

// End emits the summarized request entry at the highest severity seen.
func (l *Logger) End(ctx *gin.Context) {
	if ctx.Request == nil {
		return
	}

	log.Printf("[%s] %s %s %s (%d) (%s)",
		l.severity,
		l.trace,
		ctx.Request.Method, ctx.Request.URL.Path,
		ctx.Writer.Status(), time.Since(l.started),
	)
}

func logReqEntry(s severity, l *Logger, msg string) {
	if s > l.severity {
		l.severity = s
	}

	var labels string
	if len(l.labels) > 0 {
		pairs := make([]string, 0, len(l.labels))
		for k, v := range l.labels {
			pairs = append(pairs, k+"="+v)
		}

		labels = " {" + strings.Join(pairs, " ") + "}"
	}

	log.Printf("[%s] %s%s\n", strings.ToLower(s.String()), msg, labels)
}

func logReq(s severity, l *Logger, v ...interface{}) {
	logReqEntry(s, l, fmt.Sprint(v...))
}

func (l *Logger) Debug(v ...interface{}) {
	logReq(severityDebug, l, v...)
}

func (l *Logger) Info(v ...interface{}) {
	logReq(severityInfo, l, v...)
}

func (l *Logger) Print(v ...interface{}) {
	logReq(severityInfo, l, v...)
}

func (l *Logger) Warning(v ...interface{}) {
	logReq(severityWarning, l, v...)
}

func (l *Logger) Error(v ...interface{}) {
	logReq(severityError, l, v...)
}

func (l *Logger) Fatal(v ...interface{}) {
	logReq(severityCritical, l, v...)
	panic(fmt.Sprint(v...))
}

func logReqf(s severity, l *Logger, format string, v ...interface{}) {
	logReqEntry(s, l, fmt.Sprintf(format, v...))
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	logReqf(severityDebug, l, format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	logReqf(severityInfo, l, format, v...)
}

func (l *Logger) Printf(format string, v ...interface{}) {
	logReqf(severityInfo, l, format, v...)
}

func (l *Logger) Warningf(format string, v ...interface{}) {
	logReqf(severityWarning, l, format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	logReqf(severityError, l, format, v...)
}

func (l *Logger) Fatalf(format string, v ...interface{}) {
	logReqf(severityCritical, l, format, v...)
	panic(fmt.Sprintf(format, v...))
}

func logReqln(s severity, l *Logger, v ...interface{}) {
	logReqEntry(s, l, fmt.Sprintln(v...))
}

func (l *Logger) Debugln(v ...interface{}) {
	logReqln(severityDebug, l, v...)
}

func (l *Logger) Infoln(v ...interface{}) {
	logReqln(severityInfo, l, v...)
}

func (l *Logger) Println(v ...interface{}) {
	logReqln(severityInfo, l, v...)
}

func (l *Logger) Warningln(v ...interface{}) {
	logReqln(severityWarning, l, v...)
}

func (l *Logger) Errorln(v ...interface{}) {
	logReqln(severityError, l, v...)
}

func (l *Logger) Fatalln(v ...interface{}) {
	logReqln(severityCritical, l, v...)
	panic(fmt.Sprintln(v...))
}
