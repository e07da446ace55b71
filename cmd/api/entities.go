package api

type Config struct {
	IpKernel   string `json:"ip_kernel"`
	PortKernel int    `json:"port_kernel"`
	IpMotor    string `json:"ip_motor"`
	PortMotor  int    `json:"port_motor"`
	LogLevel   string `json:"log_level"`
}
