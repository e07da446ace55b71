package motor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sisoputnfrba/tp-golang/planificador/internal"
)

// Motor es el cliente HTTP hacia el motor de ejecución. Implementa el contrato
// que espera el planificador: registrar despachos, pedir desalojos forzados y
// leer el reloj simulado.
type Motor struct {
	IP     string
	Puerto int
	Log    *slog.Logger
}

type Despacho struct {
	CpuID   int  `json:"cpu_id"`
	PID     int  `json:"pid"`
	PC      int  `json:"pc"`
	Quantum int  `json:"quantum"`
	Ociosa  bool `json:"ociosa"`
}

type Desalojo struct {
	CpuID int `json:"cpu_id"`
}

type Reloj struct {
	Tick int `json:"tick"`
}

func NewMotor(ip string, puerto int, logger *slog.Logger) *Motor {
	return &Motor{
		IP:     ip,
		Puerto: puerto,
		Log:    logger,
	}
}

// Dispatch le informa al motor qué proceso ocupa la CPU y con qué quantum, o
// que la CPU queda ociosa si el proceso es nil. Es no bloqueante del lado del
// planificador: el motor después llama de vuelta con el próximo evento.
func (m *Motor) Dispatch(cpuID int, proceso *internal.Proceso, quantum int) {
	despacho := Despacho{
		CpuID:   cpuID,
		Quantum: quantum,
		Ociosa:  proceso == nil,
	}
	if proceso != nil {
		despacho.PID = proceso.PCB.PID
		despacho.PC = proceso.PCB.PC
	}

	body, err := json.Marshal(despacho)
	if err != nil {
		m.Log.Error("Error al serializar el despacho",
			slog.Attr{Key: "error", Value: slog.StringValue(err.Error())},
		)
		return
	}

	url := fmt.Sprintf("http://%s:%d/motor/procesos", m.IP, m.Puerto)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		m.Log.Error("error enviando mensaje",
			slog.Attr{Key: "error", Value: slog.StringValue(err.Error())},
			slog.Attr{Key: "ip", Value: slog.StringValue(m.IP)},
			slog.Attr{Key: "puerto", Value: slog.IntValue(m.Puerto)},
		)
		return
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	m.Log.Debug("Respuesta del motor",
		slog.Attr{Key: "status", Value: slog.StringValue(resp.Status)},
		slog.Attr{Key: "body", Value: slog.StringValue(string(body))},
	)
}

// ForzarDesalojo le pide al motor que interrumpa a la CPU antes de que venza
// su quantum. El motor responde después invocando la interrupción de esa CPU.
func (m *Motor) ForzarDesalojo(cpuID int) {
	body, err := json.Marshal(Desalojo{CpuID: cpuID})
	if err != nil {
		m.Log.Error("Error al serializar el desalojo",
			slog.Attr{Key: "error", Value: slog.StringValue(err.Error())},
		)
		return
	}

	url := fmt.Sprintf("http://%s:%d/motor/interrupciones", m.IP, m.Puerto)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		m.Log.Error("error enviando mensaje",
			slog.Attr{Key: "error", Value: slog.StringValue(err.Error())},
			slog.Attr{Key: "ip", Value: slog.StringValue(m.IP)},
			slog.Attr{Key: "puerto", Value: slog.IntValue(m.Puerto)},
		)
		return
	}
	defer func() {
		_ = resp.Body.Close()
	}()
}

// TiempoActual lee el tick actual del reloj simulado del motor. Ante un error
// devuelve 0 para no frenar al planificador; el motor es la única fuente de
// tiempo de la simulación.
func (m *Motor) TiempoActual() int {
	url := fmt.Sprintf("http://%s:%d/motor/reloj", m.IP, m.Puerto)
	resp, err := http.Get(url)
	if err != nil {
		m.Log.Error("error leyendo el reloj del motor",
			slog.Attr{Key: "error", Value: slog.StringValue(err.Error())},
		)
		return 0
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	reloj := &Reloj{}
	if err := json.NewDecoder(resp.Body).Decode(reloj); err != nil {
		m.Log.Error("error decodificando el reloj del motor",
			slog.Attr{Key: "error", Value: slog.StringValue(err.Error())},
		)
		return 0
	}
	return reloj.Tick
}
