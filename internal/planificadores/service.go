package planificadores

import (
	"log/slog"
	"sync"

	"github.com/sisoputnfrba/tp-golang/planificador/internal"
)

// Motor es el contrato con el motor de ejecución. Dispatch y ForzarDesalojo
// son no bloqueantes: solo registran la decisión, el motor después llama de
// vuelta a los handlers de eventos. TiempoActual lee el reloj simulado y es
// seguro para llamar desde cualquier hilo.
type Motor interface {
	Dispatch(cpuID int, proceso *internal.Proceso, quantum int)
	ForzarDesalojo(cpuID int)
	TiempoActual() int
}

// Service es el planificador de corto plazo. Mantiene dos estructuras
// compartidas con dos mutex independientes: la cola de Ready (con el suyo
// propio) y la tabla de CPUs. Los dos locks nunca se toman anidados: primero
// se opera sobre la cola y se suelta, recién después se toma el de la tabla.
// Ese orden es el que evita deadlocks y no se debe cambiar.
type Service struct {
	Log       *slog.Logger
	Motor     Motor
	Algoritmo Algoritmo
	ColaReady *ColaReady

	mutexEnEjecucion sync.Mutex
	enEjecucion      []*internal.Proceso

	mutexProcesos sync.Mutex
	procesos      map[int]*internal.Proceso
}

// NewPlanificador crea el planificador para la cantidad de CPUs indicada. Se
// construye una sola vez al arrancar, con la configuración ya validada.
func NewPlanificador(cantidadCPUs int, algoritmo Algoritmo, motor Motor, logger *slog.Logger) *Service {
	return &Service{
		Log:         logger,
		Motor:       motor,
		Algoritmo:   algoritmo,
		ColaReady:   NewColaReady(logger),
		enEjecucion: make([]*internal.Proceso, cantidadCPUs),
		procesos:    make(map[int]*internal.Proceso),
	}
}

func (s *Service) CantidadCPUs() int {
	return len(s.enEjecucion)
}

// EnEjecucion devuelve el proceso que ocupa la CPU, o nil si está ociosa.
func (s *Service) EnEjecucion(cpuID int) *internal.Proceso {
	s.mutexEnEjecucion.Lock()
	defer s.mutexEnEjecucion.Unlock()
	return s.enEjecucion[cpuID]
}
