package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sisoputnfrba/tp-golang/planificador/utils/log"
)

// cpuDeRuta valida el parámetro {cpu} de la URL contra la cantidad de CPUs
// configurada. Devuelve -1 si es inválido, ya habiendo respondido el error.
func (h *Handler) cpuDeRuta(w http.ResponseWriter, r *http.Request) int {
	cpuID, err := strconv.Atoi(chi.URLParam(r, "cpu"))
	if err != nil || cpuID < 0 || cpuID >= h.Planificador.CantidadCPUs() {
		h.Log.Error("CPU inválida", log.StringAttr("cpu", chi.URLParam(r, "cpu")))
		http.Error(w, "CPU inválida", http.StatusBadRequest)
		return -1
	}
	return cpuID
}

// CpuLibre es el único endpoint que bloquea: el hilo de la CPU queda esperando
// hasta que haya algún proceso en Ready.
func (h *Handler) CpuLibre(w http.ResponseWriter, r *http.Request) {
	cpuID := h.cpuDeRuta(w, r)
	if cpuID == -1 {
		return
	}

	h.Planificador.CpuLibre(cpuID)

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Interrumpir atiende el fin de quantum o la confirmación de un desalojo
// forzado.
func (h *Handler) Interrumpir(w http.ResponseWriter, r *http.Request) {
	cpuID := h.cpuDeRuta(w, r)
	if cpuID == -1 {
		return
	}

	h.Planificador.Interrumpir(cpuID)

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// CederCpu atiende el pedido de IO del proceso que corre en la CPU.
func (h *Handler) CederCpu(w http.ResponseWriter, r *http.Request) {
	cpuID := h.cpuDeRuta(w, r)
	if cpuID == -1 {
		return
	}

	h.Planificador.CederCpu(cpuID)

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Finalizar atiende la terminación del proceso que corre en la CPU.
func (h *Handler) Finalizar(w http.ResponseWriter, r *http.Request) {
	cpuID := h.cpuDeRuta(w, r)
	if cpuID == -1 {
		return
	}

	h.Planificador.Finalizar(cpuID)

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
