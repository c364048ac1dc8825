package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tarm/serial"

	"gitlab.com/d21d3q/goteleinfo/internal/mqtt"
	"gitlab.com/d21d3q/goteleinfo/pkg/goteleinfo"
)

// The Teleinfo link is fixed at 1200 baud, 7 data bits, even parity.
const (
	linkBaud     = 1200
	linkDataBits = 7
)

var (
	rootCmd = &cobra.Command{
		Use:   "goteleinfo-read",
		Short: "Read and decode a Teleinfo serial link",
		Long:  "goteleinfo-read opens the meter's serial link, decodes every group and logs or publishes the results.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead()
		},
	}

	device         string
	verifyChecksum bool
	mqttBroker     string
	mqttTopic      string
	mqttUsername   string
	mqttPassword   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&device, "device", "/dev/ttyAMA0", "serial device connected to the meter")
	rootCmd.PersistentFlags().BoolVar(&verifyChecksum, "verify-checksum", false, "check the trailing control character of each group")
	rootCmd.PersistentFlags().StringVar(&mqttBroker, "mqtt-broker", "", "publish decoded groups to this broker (tcp://host:port)")
	rootCmd.PersistentFlags().StringVar(&mqttTopic, "mqtt-topic", "teleinfo/meter", "MQTT topic for decoded groups")
	rootCmd.PersistentFlags().StringVar(&mqttUsername, "mqtt-username", "", "MQTT username")
	rootCmd.PersistentFlags().StringVar(&mqttPassword, "mqtt-password", "", "MQTT password")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func runRead() error {
	port, err := serial.OpenPort(&serial.Config{
		Name:     device,
		Baud:     linkBaud,
		Size:     linkDataBits,
		Parity:   serial.ParityEven,
		StopBits: serial.Stop1,
	})
	if err != nil {
		return fmt.Errorf("open %s: %w", device, err)
	}
	defer port.Close()

	var publisher *mqtt.Publisher
	if mqttBroker != "" {
		publisher, err = mqtt.Connect(mqttBroker, mqttTopic, mqttUsername, mqttPassword)
		if err != nil {
			return err
		}
		defer publisher.Close()
	}

	opts := goteleinfo.DecodeOptions{VerifyChecksum: verifyChecksum}
	log := logrus.WithField("device", device)
	log.Info("reading meter groups")

	scanner := bufio.NewScanner(port)
	first := true
	for scanner.Scan() {
		// The first line is almost always a partial group.
		if first {
			first = false
			continue
		}
		record := trimFrameControl(scanner.Text())
		if record == "" {
			continue
		}
		message, err := goteleinfo.DecodeWithOptions(record, opts)
		if err != nil {
			log.WithError(err).WithField("record", record).Warn("failed to decode group")
			continue
		}
		if message == nil {
			log.WithField("record", record).Debug("ignored group")
			continue
		}
		fields := goteleinfo.Describe(message)
		log.WithFields(logrus.Fields(fields)).Info("decoded group")
		if publisher != nil {
			if err := publisher.Publish(fields); err != nil {
				log.WithError(err).Warn("failed to publish group")
			}
		}
	}
	return scanner.Err()
}

// trimFrameControl strips the frame-control bytes that surround groups at
// frame boundaries: start of frame, end of frame and the carriage return.
func trimFrameControl(line string) string {
	return strings.Trim(line, "\x02\x03\r")
}
