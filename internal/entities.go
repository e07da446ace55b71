package internal

const (
	EstadoNew       Estado = "NEW"
	EstadoReady     Estado = "READY"
	EstadoExec      Estado = "EXEC"
	EstadoBloqueado Estado = "BLOCKED"
	EstadoExit      Estado = "EXIT"
)

type Estado string

// PCB es la vista que tiene el planificador de un proceso simulado.
//
// TiempoEncolado se pisa en cada ingreso a la cola de Ready y solo lo lee la
// fórmula de envejecimiento. TiempoTotalRestante suma toda la CPU e IO que le
// queda al proceso y nunca crece. El PC pertenece al motor de ejecución: acá
// se guarda y se devuelve sin interpretarlo.
type PCB struct {
	PID                 int            `json:"pid"`
	Nombre              string         `json:"nombre"`
	Prioridad           int            `json:"prioridad"`
	RafagaRestante      int            `json:"rafaga_restante"`
	TiempoTotalRestante int            `json:"tiempo_total_restante"`
	TiempoLlegada       int            `json:"tiempo_llegada"`
	TiempoEncolado      int            `json:"tiempo_encolado"`
	Estado              Estado         `json:"estado"`
	PC                  int            `json:"pc"`
	MetricasEstado      map[Estado]int `json:"metricas_estado"`
}

type Proceso struct {
	PCB *PCB
}

// CambiarEstado actualiza el estado del PCB y acumula la métrica del estado
// destino.
func (p *Proceso) CambiarEstado(nuevo Estado) {
	p.PCB.Estado = nuevo
	if p.PCB.MetricasEstado == nil {
		p.PCB.MetricasEstado = make(map[Estado]int)
	}
	p.PCB.MetricasEstado[nuevo]++
}
