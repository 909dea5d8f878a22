// Package scheduler ejecuta las tareas periódicas del servicio.
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DraftSweeper descarta los borradores inactivos por más de idle y devuelve cuántos descartó.
type DraftSweeper interface {
	Sweep(idle time.Duration) int
}

// DraftJanitor limpia periódicamente los borradores de operación abandonados.
type DraftJanitor struct {
	cron    *cron.Cron
	drafts  DraftSweeper
	spec    string
	idle    time.Duration
	log     zerolog.Logger
	entryID cron.EntryID
}

// NewDraftJanitor construye el limpiador. spec es una expresión cron estándar de 5 campos
// (ej. "*/5 * * * *") o un descriptor como "@every 5m".
func NewDraftJanitor(drafts DraftSweeper, spec string, idle time.Duration, log zerolog.Logger) *DraftJanitor {
	return &DraftJanitor{
		cron:   cron.New(),
		drafts: drafts,
		spec:   spec,
		idle:   idle,
		log:    log,
	}
}

// Start programa la limpieza y arranca el cron. Devuelve error si spec es inválido.
func (j *DraftJanitor) Start() error {
	id, err := j.cron.AddFunc(j.spec, j.RunOnce)
	if err != nil {
		return fmt.Errorf("programar limpieza de borradores %q: %w", j.spec, err)
	}
	j.entryID = id
	j.cron.Start()
	j.log.Info().Str("spec", j.spec).Dur("idle", j.idle).Msg("limpieza de borradores programada")
	return nil
}

// Stop detiene el cron y espera a que termine una ejecución en curso.
func (j *DraftJanitor) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info().Msg("limpieza de borradores detenida")
}

// RunOnce ejecuta una limpieza inmediata.
func (j *DraftJanitor) RunOnce() {
	removed := j.drafts.Sweep(j.idle)
	if removed > 0 {
		j.log.Info().Int("removed", removed).Msg("borradores inactivos descartados")
		return
	}
	j.log.Debug().Msg("sin borradores inactivos")
}

// Next próxima ejecución programada (cero si no se ha iniciado).
func (j *DraftJanitor) Next() time.Time {
	return j.cron.Entry(j.entryID).Next
}
