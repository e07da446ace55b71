package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sisoputnfrba/tp-golang/planificador/cmd/api"
	"github.com/sisoputnfrba/tp-golang/planificador/internal/planificadores"
	"github.com/sisoputnfrba/tp-golang/planificador/utils/log"
)

const configFilePath = "./configs/config.json"

const uso = `Simulador de planificación multi-CPU
Uso: ./planificador <cantidad de CPUs (1-16)> [ -r <quantum ms> | -p <peso> | -s ]
    Por defecto : FIFO
             -r : Round Robin
             -p : Prioridades con envejecimiento
             -s : Shortest Remaining Time`

func main() {
	cantidadCPUs, algoritmo, err := parsearArgumentos(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n%s\n", err.Error(), uso)
		os.Exit(1)
	}

	h := api.NewHandler(configFilePath, cantidadCPUs, algoritmo)

	h.Log.Info("Planificador iniciado",
		log.IntAttr("cantidad_cpus", cantidadCPUs),
		log.StringAttr("algoritmo", algoritmo.Nombre()),
	)

	r := chi.NewRouter()

	// Motor --> Planificador (eventos de ciclo de vida)
	r.Post("/kernel/procesos", h.IniciarProceso)
	r.Post("/kernel/cpu-libre/{cpu}", h.CpuLibre)
	r.Post("/kernel/interrupciones/{cpu}", h.Interrumpir)
	r.Post("/kernel/io-peticion/{cpu}", h.CederCpu)
	r.Post("/kernel/fin-proceso/{cpu}", h.Finalizar)
	r.Post("/kernel/io-fin/{pid}", h.FinIO)

	kernelAddress := fmt.Sprintf("%s:%d", h.Config.IpKernel, h.Config.PortKernel)
	if err := http.ListenAndServe(kernelAddress, r); err != nil {
		h.Log.Error("Error starting server", log.ErrAttr(err))
		panic(err)
	}
}

// parsearArgumentos valida la línea de comandos antes de construir nada: la
// cantidad de CPUs es obligatoria (1 a 16) y el algoritmo es opcional, con un
// solo flag permitido. Cualquier combinación inválida corta el arranque.
func parsearArgumentos(args []string) (int, planificadores.Algoritmo, error) {
	if len(args) < 2 {
		return 0, nil, fmt.Errorf("falta la cantidad de CPUs")
	}

	cantidadCPUs, err := strconv.Atoi(args[1])
	if err != nil || cantidadCPUs < 1 || cantidadCPUs > 16 {
		return 0, nil, fmt.Errorf("cantidad de CPUs inválida: %s", args[1])
	}

	if len(args) == 2 {
		return cantidadCPUs, planificadores.NuevaFifo(), nil
	}

	switch args[2] {
	case "-r":
		if len(args) != 4 {
			return 0, nil, fmt.Errorf("el flag -r requiere un quantum en milisegundos")
		}
		quantumMs, err := strconv.Atoi(args[3])
		if err != nil || quantumMs <= 0 {
			return 0, nil, fmt.Errorf("quantum inválido para -r: %s", args[3])
		}
		return cantidadCPUs, planificadores.NuevoRoundRobin(quantumMs), nil
	case "-p":
		if len(args) != 4 {
			return 0, nil, fmt.Errorf("el flag -p requiere un peso de envejecimiento")
		}
		peso, err := strconv.Atoi(args[3])
		if err != nil || peso < 0 {
			return 0, nil, fmt.Errorf("peso inválido para -p: %s", args[3])
		}
		return cantidadCPUs, planificadores.NuevaPrioridadEnvejecimiento(peso), nil
	case "-s":
		if len(args) != 3 {
			return 0, nil, fmt.Errorf("el flag -s no lleva argumentos")
		}
		return cantidadCPUs, planificadores.NuevoSrt(), nil
	default:
		return 0, nil, fmt.Errorf("algoritmo desconocido: %s", args[2])
	}
}
