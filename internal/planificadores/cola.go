package planificadores

import (
	"log/slog"
	"sync"

	"github.com/sisoputnfrba/tp-golang/planificador/internal"
	"github.com/sisoputnfrba/tp-golang/planificador/utils/log"
)

// ColaReady es la cola de procesos listos. Es el único dueño del orden de los
// procesos: el PCB no guarda ningún enlace, la cola mantiene su propio slice.
// Todas las operaciones que mutan la cola se hacen bajo su mutex, y cada
// inserción despierta exactamente un consumidor bloqueado en EsperarNoVacia.
type ColaReady struct {
	mutex    sync.Mutex
	noVacia  *sync.Cond
	procesos []*internal.Proceso
	log      *slog.Logger
}

func NewColaReady(logger *slog.Logger) *ColaReady {
	c := &ColaReady{
		procesos: make([]*internal.Proceso, 0),
		log:      logger,
	}
	c.noVacia = sync.NewCond(&c.mutex)
	return c
}

// Encolar agrega el proceso al final de la cola y le pisa el TiempoEncolado
// con el tick actual. Despierta un solo consumidor por inserción: si hay
// varias CPUs ociosas y llegan varios procesos en ráfaga, cada inserción
// despierta una sola.
func (c *ColaReady) Encolar(proceso *internal.Proceso, ahora int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, encolado := range c.procesos {
		if encolado.PCB.PID == proceso.PCB.PID {
			c.log.Error("🚨 CRÍTICO: el proceso ya estaba en la cola de Ready",
				log.IntAttr("pid", proceso.PCB.PID),
			)
			return
		}
	}

	proceso.PCB.TiempoEncolado = ahora
	c.procesos = append(c.procesos, proceso)
	c.noVacia.Signal()
}

// ExtraerSegun corre el algoritmo de selección sobre el contenido actual de la
// cola y saca el proceso elegido sin tocar el orden del resto. Devuelve nil si
// la cola está vacía.
func (c *ColaReady) ExtraerSegun(algoritmo Algoritmo, ahora int) *internal.Proceso {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if len(c.procesos) == 0 {
		return nil
	}

	indice := algoritmo.Seleccionar(c.procesos, ahora)
	if indice < 0 || indice >= len(c.procesos) {
		c.log.Error("Índice de selección fuera de rango",
			log.IntAttr("indice", indice),
			log.IntAttr("procesos_en_ready", len(c.procesos)),
		)
		return nil
	}

	elegido := c.procesos[indice]
	c.procesos = append(c.procesos[:indice], c.procesos[indice+1:]...)
	return elegido
}

// EsperarNoVacia bloquea al hilo llamador hasta que la cola tenga al menos un
// proceso. Es la única operación bloqueante del planificador.
func (c *ColaReady) EsperarNoVacia() {
	c.mutex.Lock()
	for len(c.procesos) == 0 {
		c.noVacia.Wait()
	}
	c.mutex.Unlock()
}

func (c *ColaReady) EstaVacia() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.procesos) == 0
}

func (c *ColaReady) Tamanio() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.procesos)
}

// Contiene informa si un PID está actualmente encolado.
func (c *ColaReady) Contiene(pid int) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	for _, encolado := range c.procesos {
		if encolado.PCB.PID == pid {
			return true
		}
	}
	return false
}
