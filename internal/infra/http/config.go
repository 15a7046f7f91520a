package server

type Config struct {
	Port              string
	ServiceName       string
	disableMiddleware bool
}

func NewConfig(
	port string,
	serviceName string,
	disableMiddleware bool,
) Config {
	return Config{
		Port:              port,
		ServiceName:       serviceName,
		disableMiddleware: disableMiddleware,
	}
}
