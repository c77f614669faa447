package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nixxel-company-limited/escpos-bt-test/adapter"
	"github.com/nixxel-company-limited/escpos-bt-test/escpos"
	"github.com/spf13/viper"
)

const printerModel = "XP-V320M"

func main() {
	// Initialize Viper to read from environment variables
	viper.AutomaticEnv()
	viper.SetDefault("PRINTER_MAC", "DC:0D:30:CA:8D:4A")
	viper.SetDefault("RFCOMM_CHANNEL", 1)

	logger := log.New(os.Stdout, "[PRINTER-TEST] ", log.LstdFlags|log.Lmsgprefix)

	mac := viper.GetString("PRINTER_MAC")
	channel := viper.GetInt("RFCOMM_CHANNEL")

	printBanner(logger)

	device, err := adapter.NewRFCOMMAdapter(mac, channel)
	if err != nil {
		logger.Fatalf("Error: %v", err)
	}

	if err := sendTestPage(device, mac, channel, escpos.TestPage(printerModel), logger); err != nil {
		logger.Printf("Error: %v", err)
		os.Exit(1)
	}
	logger.Println("Check the printer - you should see a test page")
}

// printBanner prints the startup banner
func printBanner(logger *log.Logger) {
	rule := strings.Repeat("=", 50)
	logger.Println(rule)
	logger.Printf("%s Printer Test from Ubuntu", printerModel)
	logger.Println(rule)
}

// sendTestPage connects to the printer, writes the page in one buffer
// and closes the connection. Pairing hints are printed only when the
// connection itself fails; a send failure reports the error alone.
func sendTestPage(device adapter.Adapter, mac string, channel int, page []byte, logger *log.Logger) error {
	logger.Printf("Connecting to printer %s on channel %d...", mac, channel)
	if err := device.Open(); err != nil {
		logger.Println("Make sure bluetooth tools are installed: sudo apt install bluez bluez-tools")
		logger.Printf("and the printer is paired: bluetoothctl pair %s", mac)
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer func() {
		device.Close()
		logger.Println("Connection closed")
	}()
	logger.Println("Connected to printer")

	logger.Println("Sending test print...")
	n, err := device.Write(page)
	if err != nil {
		return fmt.Errorf("failed to send test print: %w", err)
	}
	logger.Printf("Test print sent (%d bytes)", n)

	return nil
}
