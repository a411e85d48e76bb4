package constants

import (
	"os"
	"strconv"
)

func GetStatsDir() string {
	path := os.Getenv("STATS_PATH")
	if path != "" {
		return path
	}
	return "./stats"
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetDynamoTable() string {
	table := os.Getenv("DYNAMO_TABLE")
	if table != "" {
		return table
	}
	return "eartrain-sessions"
}

// GetMidiPort is the default MIDI out port, overridable per command.
func GetMidiPort() int {
	if n, err := strconv.Atoi(os.Getenv("MIDI_PORT")); err == nil {
		return n
	}
	return 0
}

// Default question count when a play command gets no argument.
const DefaultQuestions = 20

// Width of the correct/total summary bar.
const BarLen = 24
