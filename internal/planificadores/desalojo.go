package planificadores

import (
	"fmt"
	"math"

	"github.com/sisoputnfrba/tp-golang/planificador/internal"
	"github.com/sisoputnfrba/tp-golang/planificador/utils/log"
)

// evaluarDesalojo decide, al despertar un proceso, si hay que desalojar alguna
// CPU. Solo aplica a los algoritmos con desalojo (PA y SRT). Si hay alguna CPU
// ociosa no se desaloja nada: esa CPU va a levantar el proceso sola en su
// próximo ciclo. Si todas están ocupadas y el despierto tiene mejor métrica
// que el peor de los que corren, se le pide al motor que desaloje esa CPU.
// El pedido es asincrónico: el motor después llama a Interrumpir, por eso acá
// no se invoca al handler y el lock de la tabla ya está liberado cuando el
// pedido sale.
func (s *Service) evaluarDesalojo(despierto *internal.Proceso, ahora int) {
	if !s.Algoritmo.DesalojaAlDespertar() {
		return
	}

	metricaDespierto := s.Algoritmo.MetricaDesalojo(despierto, ahora)

	cpuObjetivo := -1
	peorMetrica := math.Inf(-1)
	hayCpuOciosa := false

	s.mutexEnEjecucion.Lock()
	for _, ocupante := range s.enEjecucion {
		if ocupante == nil {
			hayCpuOciosa = true
			break
		}
	}

	if !hayCpuOciosa {
		for cpuID, ocupante := range s.enEjecucion {
			metrica := s.Algoritmo.MetricaDesalojo(ocupante, ahora)
			if metrica > peorMetrica {
				peorMetrica = metrica
				cpuObjetivo = cpuID
			}
		}
	}
	s.mutexEnEjecucion.Unlock()

	if hayCpuOciosa || cpuObjetivo == -1 || metricaDespierto >= peorMetrica {
		return
	}

	//Log obligatorio: Desalojo por algoritmo PA/SRT
	s.Log.Info(fmt.Sprintf("## (%d) - Desalojado por algoritmo %s",
		s.enEjecucionSinVerificar(cpuObjetivo), s.Algoritmo.Nombre()))

	s.Log.Debug("Desalojo forzado solicitado al motor",
		log.IntAttr("cpu_objetivo", cpuObjetivo),
		log.IntAttr("pid_despierto", despierto.PCB.PID),
	)

	s.Motor.ForzarDesalojo(cpuObjetivo)
}

// enEjecucionSinVerificar lee el PID del ocupante de la CPU solo para loguear.
// Entre la evaluación y este log el ocupante pudo haber cambiado; el desalojo
// en sí lo resuelve el motor con su propio orden de eventos.
func (s *Service) enEjecucionSinVerificar(cpuID int) int {
	s.mutexEnEjecucion.Lock()
	defer s.mutexEnEjecucion.Unlock()
	if ocupante := s.enEjecucion[cpuID]; ocupante != nil {
		return ocupante.PCB.PID
	}
	return -1
}
