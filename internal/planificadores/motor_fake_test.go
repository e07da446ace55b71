package planificadores

import (
	"io"
	"log/slog"
	"sync"

	"github.com/sisoputnfrba/tp-golang/planificador/internal"
)

type despachoRegistrado struct {
	CpuID   int
	PID     int
	Quantum int
	Ociosa  bool
}

// motorFake implementa el contrato del motor para los tests: registra los
// despachos y los desalojos forzados, y expone un reloj simulado que los
// tests avanzan a mano.
type motorFake struct {
	mutex     sync.Mutex
	tick      int
	despachos []despachoRegistrado
	desalojos []int
}

func (m *motorFake) Dispatch(cpuID int, proceso *internal.Proceso, quantum int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	despacho := despachoRegistrado{CpuID: cpuID, Quantum: quantum, Ociosa: proceso == nil}
	if proceso != nil {
		despacho.PID = proceso.PCB.PID
	}
	m.despachos = append(m.despachos, despacho)
}

func (m *motorFake) ForzarDesalojo(cpuID int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.desalojos = append(m.desalojos, cpuID)
}

func (m *motorFake) TiempoActual() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.tick
}

func (m *motorFake) avanzarReloj(ticks int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.tick += ticks
}

func (m *motorFake) ultimoDespacho() despachoRegistrado {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.despachos[len(m.despachos)-1]
}

func (m *motorFake) desalojosPedidos() []int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return append([]int{}, m.desalojos...)
}

func nuevoServicioDePrueba(cantidadCPUs int, algoritmo Algoritmo) (*Service, *motorFake) {
	motor := &motorFake{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPlanificador(cantidadCPUs, algoritmo, motor, logger), motor
}

func procesoDePrueba(pid, prioridad, totalRestante int) *internal.Proceso {
	return &internal.Proceso{PCB: &internal.PCB{
		PID:                 pid,
		Nombre:              "proceso",
		Prioridad:           prioridad,
		TiempoTotalRestante: totalRestante,
		Estado:              internal.EstadoNew,
		MetricasEstado:      make(map[internal.Estado]int),
	}}
}
