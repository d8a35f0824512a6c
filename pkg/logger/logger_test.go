package logger_test

import (
	"context"
	"log/slog"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/uplink-monitor/pkg/logger"
)

func TestLogger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Logger Suite")
}

var _ = Describe("Logger", func() {
	Describe("New", func() {
		It("should create logger with info level", func() {
			log := logger.New("info", false, "dev")
			Expect(log).NotTo(BeNil())
			Expect(log.Enabled(context.Background(), slog.LevelInfo)).To(BeTrue())
			Expect(log.Enabled(context.Background(), slog.LevelDebug)).To(BeFalse())
		})

		It("should create logger with debug level", func() {
			log := logger.New("debug", false, "dev")
			Expect(log).NotTo(BeNil())
			Expect(log.Enabled(context.Background(), slog.LevelDebug)).To(BeTrue())
		})

		It("should create logger with warn level", func() {
			log := logger.New("warn", false, "dev")
			Expect(log).NotTo(BeNil())
			Expect(log.Enabled(context.Background(), slog.LevelInfo)).To(BeFalse())
		})

		It("should create logger with error level", func() {
			log := logger.New("error", false, "dev")
			Expect(log).NotTo(BeNil())
			Expect(log.Enabled(context.Background(), slog.LevelWarn)).To(BeFalse())
		})

		It("should default to info for invalid level", func() {
			log := logger.New("invalid", false, "dev")
			Expect(log).NotTo(BeNil())
			Expect(log.Enabled(context.Background(), slog.LevelInfo)).To(BeTrue())
		})

		It("should create prod logger", func() {
			log := logger.New("info", false, "prod")
			Expect(log).NotTo(BeNil())
		})

		It("should support addSource option", func() {
			log := logger.New("info", true, "dev")
			Expect(log).NotTo(BeNil())
		})
	})
})
