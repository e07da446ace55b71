package motor

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/sisoputnfrba/tp-golang/planificador/internal"
)

func motorDePrueba() *Motor {
	return NewMotor("127.0.0.1", 8002, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDispatchEnviaElProcesoAlMotor(t *testing.T) {
	ass := assert.New(t)
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var recibido Despacho
	httpmock.RegisterResponder("POST", "http://127.0.0.1:8002/motor/procesos",
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&recibido); err != nil {
				return httpmock.NewStringResponse(http.StatusBadRequest, "body inválido"), nil
			}
			return httpmock.NewStringResponse(http.StatusOK, "ok"), nil
		})

	m := motorDePrueba()
	proceso := &internal.Proceso{PCB: &internal.PCB{PID: 3, PC: 12}}
	m.Dispatch(1, proceso, 2)

	ass.Equal(1, httpmock.GetTotalCallCount())
	ass.Equal(Despacho{CpuID: 1, PID: 3, PC: 12, Quantum: 2}, recibido)
}

func TestDispatchSinProcesoMarcaLaCpuOciosa(t *testing.T) {
	ass := assert.New(t)
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var recibido Despacho
	httpmock.RegisterResponder("POST", "http://127.0.0.1:8002/motor/procesos",
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&recibido); err != nil {
				return httpmock.NewStringResponse(http.StatusBadRequest, "body inválido"), nil
			}
			return httpmock.NewStringResponse(http.StatusOK, "ok"), nil
		})

	m := motorDePrueba()
	m.Dispatch(0, nil, -1)

	ass.True(recibido.Ociosa)
	ass.Equal(-1, recibido.Quantum)
}

func TestForzarDesalojoInterrumpeALaCpu(t *testing.T) {
	ass := assert.New(t)
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var recibido Desalojo
	httpmock.RegisterResponder("POST", "http://127.0.0.1:8002/motor/interrupciones",
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&recibido); err != nil {
				return httpmock.NewStringResponse(http.StatusBadRequest, "body inválido"), nil
			}
			return httpmock.NewStringResponse(http.StatusOK, "ok"), nil
		})

	m := motorDePrueba()
	m.ForzarDesalojo(1)

	ass.Equal(Desalojo{CpuID: 1}, recibido)
}

func TestTiempoActualLeeElReloj(t *testing.T) {
	ass := assert.New(t)
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "http://127.0.0.1:8002/motor/reloj",
		httpmock.NewStringResponder(http.StatusOK, `{"tick": 42}`))

	m := motorDePrueba()
	ass.Equal(42, m.TiempoActual())
}

func TestTiempoActualConMotorCaidoDevuelveCero(t *testing.T) {
	ass := assert.New(t)
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	// Sin responder registrado la petición falla.
	m := motorDePrueba()
	ass.Equal(0, m.TiempoActual())
}
