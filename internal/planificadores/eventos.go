package planificadores

import (
	"fmt"

	"github.com/sisoputnfrba/tp-golang/planificador/internal"
	"github.com/sisoputnfrba/tp-golang/planificador/utils/log"
)

// planificar elige el próximo proceso para la CPU y se lo entrega al motor.
// Primero extrae de la cola de Ready bajo su lock y lo suelta; recién después
// publica en la tabla de CPUs bajo el lock de la tabla. En el medio no hay
// ningún lock tomado: nadie más puede pisar el slot de esta CPU porque el
// motor serializa los eventos por CPU.
func (s *Service) planificar(cpuID int) {
	ahora := s.Motor.TiempoActual()
	siguiente := s.ColaReady.ExtraerSegun(s.Algoritmo, ahora)

	s.mutexEnEjecucion.Lock()
	if siguiente != nil {
		for otraCpu, ocupante := range s.enEjecucion {
			// El slot propio puede seguir apuntando al ocupante recién
			// interrumpido: se pisa acá mismo.
			if otraCpu == cpuID {
				continue
			}
			if ocupante != nil && ocupante.PCB.PID == siguiente.PCB.PID {
				s.Log.Error("🚨 CRÍTICO: el proceso ya ocupa otra CPU",
					log.IntAttr("pid", siguiente.PCB.PID),
					log.IntAttr("cpu_ocupada", otraCpu),
					log.IntAttr("cpu_destino", cpuID),
				)
			}
		}
	}
	s.enEjecucion[cpuID] = siguiente
	s.mutexEnEjecucion.Unlock()

	if siguiente != nil {
		siguiente.CambiarEstado(internal.EstadoExec)

		//Log obligatorio: Cambio de estado
		s.Log.Info(fmt.Sprintf("## (%d) Pasa del estado READY al estado EXEC", siguiente.PCB.PID))
	}

	s.Motor.Dispatch(cpuID, siguiente, s.Algoritmo.Quantum())
}

// CpuLibre atiende a una CPU sin nada que ejecutar. Bloquea al hilo de esa CPU
// hasta que la cola de Ready tenga algún proceso y recién ahí planifica. Si
// otra CPU le ganó de mano el proceso, el dispatch sale vacío y el motor
// vuelve a llamar acá.
func (s *Service) CpuLibre(cpuID int) {
	s.ColaReady.EsperarNoVacia()
	s.planificar(cpuID)
}

// Interrumpir atiende el fin de quantum o un desalojo forzado: el ocupante de
// la CPU vuelve a Ready (con TiempoEncolado nuevo) y se planifica de nuevo.
func (s *Service) Interrumpir(cpuID int) {
	s.mutexEnEjecucion.Lock()
	proceso := s.enEjecucion[cpuID]
	s.mutexEnEjecucion.Unlock()

	if proceso != nil {
		proceso.CambiarEstado(internal.EstadoReady)

		//Log obligatorio: Cambio de estado
		s.Log.Info(fmt.Sprintf("## (%d) Pasa del estado EXEC al estado READY", proceso.PCB.PID))

		ahora := s.Motor.TiempoActual()
		s.ColaReady.Encolar(proceso, ahora)
	}

	s.planificar(cpuID)
}

// CederCpu atiende el pedido de IO del proceso en ejecución. El proceso queda
// BLOCKED, fuera de la cola y fuera de la tabla (el slot se pisa al
// planificar), hasta que el motor lo despierte.
func (s *Service) CederCpu(cpuID int) {
	s.mutexEnEjecucion.Lock()
	proceso := s.enEjecucion[cpuID]
	s.mutexEnEjecucion.Unlock()

	if proceso != nil {
		proceso.CambiarEstado(internal.EstadoBloqueado)

		//Log obligatorio: Cambio de estado
		s.Log.Info(fmt.Sprintf("## (%d) Pasa del estado EXEC al estado BLOCKED", proceso.PCB.PID))
	}

	s.planificar(cpuID)
}

// Finalizar atiende la terminación del proceso en ejecución: limpia el slot,
// deja el proceso en EXIT (estado terminal) y planifica el reemplazo.
func (s *Service) Finalizar(cpuID int) {
	s.mutexEnEjecucion.Lock()
	proceso := s.enEjecucion[cpuID]
	s.enEjecucion[cpuID] = nil
	s.mutexEnEjecucion.Unlock()

	if proceso != nil {
		proceso.CambiarEstado(internal.EstadoExit)

		//Log obligatorio: Fin de proceso
		s.Log.Info(fmt.Sprintf("## (%d) - Finaliza el proceso", proceso.PCB.PID))
		s.Log.Info(fmt.Sprintf("## (%d) Métricas de estado: NEW %d; READY %d; EXEC %d; BLOCKED %d; EXIT %d",
			proceso.PCB.PID,
			proceso.PCB.MetricasEstado[internal.EstadoNew],
			proceso.PCB.MetricasEstado[internal.EstadoReady],
			proceso.PCB.MetricasEstado[internal.EstadoExec],
			proceso.PCB.MetricasEstado[internal.EstadoBloqueado],
			proceso.PCB.MetricasEstado[internal.EstadoExit]))

		s.EliminarProceso(proceso.PCB.PID)
	}

	s.planificar(cpuID)
}

// Despertar atiende el fin de IO de un proceso (o su primera llegada): lo
// encola en Ready y, para los algoritmos con desalojo, evalúa si corresponde
// desalojar alguna CPU ocupada.
func (s *Service) Despertar(proceso *internal.Proceso) {
	ahora := s.Motor.TiempoActual()

	anterior := proceso.PCB.Estado
	if anterior == internal.EstadoNew {
		// Primera entrada a Ready: acá nace el tiempo de llegada.
		proceso.PCB.TiempoLlegada = ahora
	}
	proceso.CambiarEstado(internal.EstadoReady)

	//Log obligatorio: Cambio de estado
	s.Log.Info(fmt.Sprintf("## (%d) Pasa del estado %s al estado READY", proceso.PCB.PID, anterior))

	s.ColaReady.Encolar(proceso, ahora)

	s.evaluarDesalojo(proceso, ahora)
}
