package planificadores

import (
	"fmt"

	"github.com/sisoputnfrba/tp-golang/planificador/internal"
	"github.com/sisoputnfrba/tp-golang/planificador/utils/log"
)

// RegistrarProceso da de alta un proceso nuevo en la tabla de procesos. El PCB
// lo arma el motor; acá solo se lo guarda para poder resolverlo por PID cuando
// llega un fin de IO.
func (s *Service) RegistrarProceso(proceso *internal.Proceso) error {
	s.mutexProcesos.Lock()
	defer s.mutexProcesos.Unlock()

	if _, existe := s.procesos[proceso.PCB.PID]; existe {
		return fmt.Errorf("el PID %d ya está registrado", proceso.PCB.PID)
	}

	proceso.CambiarEstado(internal.EstadoNew)
	s.procesos[proceso.PCB.PID] = proceso

	s.Log.Debug("Proceso registrado",
		log.IntAttr("pid", proceso.PCB.PID),
		log.StringAttr("nombre", proceso.PCB.Nombre),
	)
	return nil
}

func (s *Service) BuscarProcesoPorPID(pid int) (*internal.Proceso, error) {
	s.mutexProcesos.Lock()
	defer s.mutexProcesos.Unlock()

	proceso, existe := s.procesos[pid]
	if !existe {
		return nil, fmt.Errorf("no existe un proceso con PID %d", pid)
	}
	return proceso, nil
}

// EliminarProceso saca el proceso de la tabla al finalizar. El PCB sigue
// siendo del motor; acá solo se deja de referenciar.
func (s *Service) EliminarProceso(pid int) {
	s.mutexProcesos.Lock()
	defer s.mutexProcesos.Unlock()
	delete(s.procesos, pid)
}
