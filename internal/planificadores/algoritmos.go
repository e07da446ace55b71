package planificadores

import (
	"github.com/sisoputnfrba/tp-golang/planificador/internal"
)

// QuantumInfinito indica que el proceso corre hasta que ceda la CPU, termine
// o sea desalojado por el protocolo de despertar.
const QuantumInfinito = -1

// Algoritmo es la estrategia de selección de corto plazo. Seleccionar recibe
// el contenido actual de la cola de Ready y el tick actual, y devuelve el
// índice del proceso elegido. No tiene efectos sobre ningún proceso: la
// extracción la hace la cola.
type Algoritmo interface {
	Nombre() string
	Seleccionar(listos []*internal.Proceso, ahora int) int
	Quantum() int

	// DesalojaAlDespertar indica si al despertar un proceso hay que evaluar
	// el desalojo de alguna CPU ocupada. MetricaDesalojo es la métrica que se
	// compara en esa evaluación (menor es mejor).
	DesalojaAlDespertar() bool
	MetricaDesalojo(proceso *internal.Proceso, ahora int) float64
}

// CalcularQuantum convierte el quantum de milisegundos a ticks del simulador
// (1 tick = 100 ms). Un valor positivo menor a un tick redondea a 1.
func CalcularQuantum(quantumMs int) int {
	quantum := quantumMs / 100
	if quantum == 0 && quantumMs > 0 {
		quantum = 1
	}
	return quantum
}

// ---------------------------------------------------------------------------
// FIFO: gana el proceso con menor tiempo de llegada. Ante empate gana el
// primero recorrido, o sea el que está antes en la cola.

type Fifo struct{}

func NuevaFifo() *Fifo { return &Fifo{} }

func (f *Fifo) Nombre() string { return "FIFO" }

func (f *Fifo) Seleccionar(listos []*internal.Proceso, ahora int) int {
	mejor := 0
	for i, proceso := range listos {
		if proceso.PCB.TiempoLlegada < listos[mejor].PCB.TiempoLlegada {
			mejor = i
		}
	}
	return mejor
}

func (f *Fifo) Quantum() int { return QuantumInfinito }

func (f *Fifo) DesalojaAlDespertar() bool { return false }

func (f *Fifo) MetricaDesalojo(proceso *internal.Proceso, ahora int) float64 { return 0 }

// ---------------------------------------------------------------------------
// Round Robin: siempre la cabeza de la cola, con quantum finito. El desalojo
// por fin de quantum lo dispara el motor invocando la interrupción.

type RoundRobin struct {
	quantum int
}

func NuevoRoundRobin(quantumMs int) *RoundRobin {
	return &RoundRobin{quantum: CalcularQuantum(quantumMs)}
}

func (r *RoundRobin) Nombre() string { return "RR" }

func (r *RoundRobin) Seleccionar(listos []*internal.Proceso, ahora int) int { return 0 }

func (r *RoundRobin) Quantum() int { return r.quantum }

func (r *RoundRobin) DesalojaAlDespertar() bool { return false }

func (r *RoundRobin) MetricaDesalojo(proceso *internal.Proceso, ahora int) float64 { return 0 }

// ---------------------------------------------------------------------------
// Prioridades con envejecimiento: gana la menor prioridad efectiva
//
//	Prioridad - (Ahora - TiempoEncolado) * Peso
//
// recalculada en cada selección, nunca cacheada. Ante empate exacto de métrica
// gana el de menor tiempo de llegada.

type PrioridadEnvejecimiento struct {
	peso int
}

func NuevaPrioridadEnvejecimiento(peso int) *PrioridadEnvejecimiento {
	return &PrioridadEnvejecimiento{peso: peso}
}

func (p *PrioridadEnvejecimiento) Nombre() string { return "PA" }

func (p *PrioridadEnvejecimiento) prioridadConEdad(proceso *internal.Proceso, ahora int) float64 {
	return float64(proceso.PCB.Prioridad) - float64(ahora-proceso.PCB.TiempoEncolado)*float64(p.peso)
}

func (p *PrioridadEnvejecimiento) Seleccionar(listos []*internal.Proceso, ahora int) int {
	mejor := 0
	mejorMetrica := p.prioridadConEdad(listos[0], ahora)

	for i, proceso := range listos {
		metrica := p.prioridadConEdad(proceso, ahora)
		if metrica < mejorMetrica {
			mejorMetrica = metrica
			mejor = i
		} else if metrica == mejorMetrica && proceso.PCB.TiempoLlegada < listos[mejor].PCB.TiempoLlegada {
			mejor = i
		}
	}
	return mejor
}

func (p *PrioridadEnvejecimiento) Quantum() int { return QuantumInfinito }

func (p *PrioridadEnvejecimiento) DesalojaAlDespertar() bool { return true }

func (p *PrioridadEnvejecimiento) MetricaDesalojo(proceso *internal.Proceso, ahora int) float64 {
	return p.prioridadConEdad(proceso, ahora)
}

// ---------------------------------------------------------------------------
// SRT: gana el menor tiempo total restante. Ante empate gana el primero
// recorrido.

type Srt struct{}

func NuevoSrt() *Srt { return &Srt{} }

func (s *Srt) Nombre() string { return "SRT" }

func (s *Srt) Seleccionar(listos []*internal.Proceso, ahora int) int {
	mejor := 0
	for i, proceso := range listos {
		if proceso.PCB.TiempoTotalRestante < listos[mejor].PCB.TiempoTotalRestante {
			mejor = i
		}
	}
	return mejor
}

func (s *Srt) Quantum() int { return QuantumInfinito }

func (s *Srt) DesalojaAlDespertar() bool { return true }

func (s *Srt) MetricaDesalojo(proceso *internal.Proceso, ahora int) float64 {
	return float64(proceso.PCB.TiempoTotalRestante)
}
