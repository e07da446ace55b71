package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sisoputnfrba/tp-golang/planificador/internal"
	"github.com/sisoputnfrba/tp-golang/planificador/utils/log"
)

// IniciarProceso da de alta un proceso NEW y lo hace entrar a Ready por
// primera vez. El motor manda el PCB completo en el body.
func (h *Handler) IniciarProceso(w http.ResponseWriter, r *http.Request) {
	pcb := &internal.PCB{}
	if err := json.NewDecoder(r.Body).Decode(pcb); err != nil {
		h.Log.Error("Error al decodificar el PCB", log.ErrAttr(err))
		http.Error(w, "Error al decodificar el PCB", http.StatusBadRequest)
		return
	}

	proceso := &internal.Proceso{PCB: pcb}
	if err := h.Planificador.RegistrarProceso(proceso); err != nil {
		h.Log.Error("Error al registrar el proceso",
			log.ErrAttr(err),
			log.IntAttr("pid", pcb.PID),
		)
		http.Error(w, "PID ya registrado", http.StatusConflict)
		return
	}

	h.Planificador.Despertar(proceso)

	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte("ok"))
}

// FinIO atiende el fin de IO de un proceso bloqueado: lo despierta y, según
// el algoritmo, puede pedirle al motor un desalojo forzado.
func (h *Handler) FinIO(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(chi.URLParam(r, "pid"))
	if err != nil {
		h.Log.Error("PID inválido", log.StringAttr("pid", chi.URLParam(r, "pid")))
		http.Error(w, "PID inválido", http.StatusBadRequest)
		return
	}

	proceso, err := h.Planificador.BuscarProcesoPorPID(pid)
	if err != nil {
		h.Log.Error("Error al buscar el proceso por PID",
			log.ErrAttr(err),
			log.IntAttr("pid", pid),
		)
		http.Error(w, "Proceso no encontrado", http.StatusNotFound)
		return
	}

	h.Planificador.Despertar(proceso)

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
