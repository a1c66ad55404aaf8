package main

import (
	"context"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"ayz-shop/internal/configs"
	"ayz-shop/internal/delivery/kafka"
)

// statusfeed publishes one status-update JSON document to the status
// topic, for driving the consumer locally.
func main() {
	_ = godotenv.Load()

	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %s", err)
	}
	logrus.Print("config loaded")

	pub, err := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaStatusTopic)
	if err != nil {
		logrus.Fatalf("kafka publisher connect error: %s", err)
	}
	defer func() {
		if cerr := pub.Close(); cerr != nil {
			logrus.Errorf("publisher close: %v", cerr)
		}
	}()
	logrus.Print("connected to kafka")

	f, err := os.Open(cfg.StatusSamplePath)
	if err != nil {
		logrus.Fatalf("open status sample: %s", err)
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		logrus.Fatalf("read status sample: %s", err)
	}

	if err := pub.Publish(context.Background(), body); err != nil {
		logrus.Fatalf("publish failed: %s", err)
	}
	logrus.Print("published status update to kafka")
}
