package config

import (
	"fmt"
	"strconv"
	"strings"
)

// NetworkAddress адрес вида host:port для HTTP и gRPC серверов
type NetworkAddress struct {
	Host string
	Port int
}

func (a NetworkAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// IsZero сообщает, что адрес не задан
func (a NetworkAddress) IsZero() bool {
	return a.Host == "" && a.Port == 0
}

func (a *NetworkAddress) Set(value string) error {
	host, portStr, found := strings.Cut(value, ":")
	if !found || strings.Contains(portStr, ":") {
		return fmt.Errorf("invalid network address format: %s", value)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("port out of range: %d", port)
	}

	a.Host = host
	a.Port = port

	return nil
}

func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}
