package api

import (
	"log/slog"

	"github.com/sisoputnfrba/tp-golang/planificador/internal/planificadores"
	"github.com/sisoputnfrba/tp-golang/planificador/pkg/motor"
	"github.com/sisoputnfrba/tp-golang/planificador/utils/config"
	"github.com/sisoputnfrba/tp-golang/planificador/utils/log"
)

type Handler struct {
	Log          *slog.Logger
	Config       *Config
	Planificador *planificadores.Service
}

func NewHandler(configFile string, cantidadCPUs int, algoritmo planificadores.Algoritmo) *Handler {
	c := config.IniciarConfiguracion(configFile, &Config{})
	if c == nil {
		panic("Error loading configuration")
	}

	// Cast the configuration to the specific type
	configStruct, ok := c.(*Config)
	if !ok {
		panic("Error casting configuration")
	}

	// Initialize the logger with the log level from the configuration
	logger := log.BuildLogger(configStruct.LogLevel)

	motorCliente := motor.NewMotor(configStruct.IpMotor, configStruct.PortMotor, logger)

	return &Handler{
		Config:       configStruct,
		Log:          logger,
		Planificador: planificadores.NewPlanificador(cantidadCPUs, algoritmo, motorCliente, logger),
	}
}
