/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package mcp

import (
	"log"

	"github.com/spf13/viper"
)

func logToolCall(toolName string, params interface{}) {
	if viper.GetBool("verbose") {
		log.Printf("[MCP TOOL] %s called with params: %+v", toolName, params)
	}
}

// LogInfo writes an informational MCP log line when verbose output is on.
func LogInfo(msg string) {
	if viper.GetBool("verbose") {
		log.Printf("[MCP INFO] %s", msg)
	}
}

// LogError always writes MCP errors to the log.
func LogError(err error) {
	log.Printf("[MCP ERROR] %v", err)
}
