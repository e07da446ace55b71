package planificadores

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func colaDePrueba() *ColaReady {
	return NewColaReady(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEncolarPisaTiempoEncolado(t *testing.T) {
	ass := assert.New(t)
	cola := colaDePrueba()

	proceso := procesoDePrueba(1, 0, 0)
	proceso.PCB.TiempoEncolado = 3

	cola.Encolar(proceso, 17)

	ass.Equal(17, proceso.PCB.TiempoEncolado)
	ass.Equal(1, cola.Tamanio())
	ass.True(cola.Contiene(1))
}

func TestEncolarRechazaDuplicados(t *testing.T) {
	ass := assert.New(t)
	cola := colaDePrueba()

	proceso := procesoDePrueba(1, 0, 0)
	cola.Encolar(proceso, 1)
	cola.Encolar(proceso, 2)

	ass.Equal(1, cola.Tamanio())
	// El duplicado no pisa el tiempo de encolado original.
	ass.Equal(1, proceso.PCB.TiempoEncolado)
}

func TestExtraerSegunRespetaElOrdenDeEncolado(t *testing.T) {
	ass := assert.New(t)
	cola := colaDePrueba()
	rr := NuevoRoundRobin(100)

	cola.Encolar(procesoDePrueba(1, 0, 0), 0)
	cola.Encolar(procesoDePrueba(2, 0, 0), 1)
	cola.Encolar(procesoDePrueba(3, 0, 0), 2)

	ass.Equal(1, cola.ExtraerSegun(rr, 5).PCB.PID)
	ass.Equal(2, cola.ExtraerSegun(rr, 5).PCB.PID)
	ass.Equal(3, cola.ExtraerSegun(rr, 5).PCB.PID)
	ass.Nil(cola.ExtraerSegun(rr, 5))
}

func TestExtraerSegunSacaUnMiembroArbitrarioSinTocarElResto(t *testing.T) {
	ass := assert.New(t)
	cola := colaDePrueba()
	srt := NuevoSrt()

	cola.Encolar(procesoDePrueba(1, 0, 9), 0)
	cola.Encolar(procesoDePrueba(2, 0, 2), 1)
	cola.Encolar(procesoDePrueba(3, 0, 5), 2)

	ass.Equal(2, cola.ExtraerSegun(srt, 5).PCB.PID)

	// Los que quedan conservan su orden físico original.
	rr := NuevoRoundRobin(100)
	ass.Equal(1, cola.ExtraerSegun(rr, 5).PCB.PID)
	ass.Equal(3, cola.ExtraerSegun(rr, 5).PCB.PID)
}

func TestEsperarNoVaciaDespiertaConEncolar(t *testing.T) {
	ass := assert.New(t)
	cola := colaDePrueba()

	desbloqueado := make(chan struct{})
	go func() {
		cola.EsperarNoVacia()
		close(desbloqueado)
	}()

	// El consumidor tiene que seguir bloqueado con la cola vacía.
	select {
	case <-desbloqueado:
		t.Fatal("EsperarNoVacia retornó con la cola vacía")
	case <-time.After(50 * time.Millisecond):
	}

	cola.Encolar(procesoDePrueba(1, 0, 0), 0)

	select {
	case <-desbloqueado:
	case <-time.After(time.Second):
		t.Fatal("EsperarNoVacia no despertó tras Encolar")
	}

	ass.False(cola.EstaVacia())
}
