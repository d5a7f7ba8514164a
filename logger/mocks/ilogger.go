package mocks

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type ILogger struct {
	mock.Mock
}

func (m *ILogger) Trace() string {
	args := m.Called()
	return args.String(0)
}

func (m *ILogger) SetLabel(key, value string) {
	m.Called(key, value)
}

func (m *ILogger) SetLabels(labels map[string]string) {
	m.Called(labels)
}

func (m *ILogger) End(ctx *gin.Context) {
	m.Called(ctx)
}

func (m *ILogger) Debug(args ...interface{})                 { m.Called(args...) }
func (m *ILogger) Debugf(format string, args ...interface{}) { m.Called(append([]interface{}{format}, args...)...) }
func (m *ILogger) Debugln(args ...interface{})               { m.Called(args...) }

func (m *ILogger) Info(args ...interface{})                 { m.Called(args...) }
func (m *ILogger) Infof(format string, args ...interface{}) { m.Called(append([]interface{}{format}, args...)...) }
func (m *ILogger) Infoln(args ...interface{})               { m.Called(args...) }

func (m *ILogger) Print(args ...interface{})                 { m.Called(args...) }
func (m *ILogger) Printf(format string, args ...interface{}) { m.Called(append([]interface{}{format}, args...)...) }
func (m *ILogger) Println(args ...interface{})               { m.Called(args...) }

func (m *ILogger) Warning(args ...interface{})                 { m.Called(args...) }
func (m *ILogger) Warningf(format string, args ...interface{}) { m.Called(append([]interface{}{format}, args...)...) }
func (m *ILogger) Warningln(args ...interface{})               { m.Called(args...) }

func (m *ILogger) Error(args ...interface{})                 { m.Called(args...) }
func (m *ILogger) Errorf(format string, args ...interface{}) { m.Called(append([]interface{}{format}, args...)...) }
func (m *ILogger) Errorln(args ...interface{})               { m.Called(args...) }

func (m *ILogger) Fatal(args ...interface{})                 { m.Called(args...) }
func (m *ILogger) Fatalf(format string, args ...interface{}) { m.Called(append([]interface{}{format}, args...)...) }
func (m *ILogger) Fatalln(args ...interface{})               { m.Called(args...) }
