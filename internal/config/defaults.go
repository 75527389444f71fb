package config

const (
	// DefaultGatewayName is the fixed name of the gateway container.
	DefaultGatewayName = "selenoid"
	// DefaultUIName is the fixed name of the UI container.
	DefaultUIName = "selenoid-ui"
	// DefaultVersion is the image tag used when no version is configured.
	DefaultVersion = "latest-release"
	// DefaultGatewayPort is the host port forwarded to the gateway.
	DefaultGatewayPort = 4444
	// DefaultUIPort is the host port forwarded to the UI.
	DefaultUIPort = 8080
	// DefaultBrowsersFile is the browsers file path, relative to the
	// working directory.
	DefaultBrowsersFile = "./browsers.json"
	// DefaultEngineSocket is the engine socket forwarded into the gateway.
	DefaultEngineSocket = "/var/run/docker.sock"
)

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Gateway: GatewayConfig{
			Name:    DefaultGatewayName,
			Version: DefaultVersion,
			Port:    DefaultGatewayPort,
		},
		UI: UIConfig{
			Name:    DefaultUIName,
			Version: DefaultVersion,
			Port:    DefaultUIPort,
		},
		BrowsersFile: DefaultBrowsersFile,
		EngineSocket: DefaultEngineSocket,
		FailFast:     true,
		PathStyle:    HostPathStyle(),
	}
}
