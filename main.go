package main

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/tuannh982/go-infset/infset"

	log "github.com/sirupsen/logrus"
)

func main() {
	logger := log.WithFields(log.Fields{"component": "demo"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Level = log.InfoLevel

	// Every session is admitted until it gets banned, so the admission set
	// starts as the universal set and bans are removals.
	admitted := infset.AllHash[uuid.UUID]()
	banned := uuid.New()
	visitor := uuid.New()
	admitted.Remove(banned)
	logger.Info("admitted sessions ", admitted)
	logger.Info("visitor admitted: ", admitted.Contains(visitor))
	logger.Info("banned admitted: ", admitted.Contains(banned))

	// Intersecting two admission sets applies the bans of both.
	other := infset.AllHash[uuid.UUID]()
	other.Remove(banned)
	other.Remove(visitor)
	merged := admitted.Intersection(other)
	logger.Info("merged admissions ", merged)
	logger.Info("visitor still admitted: ", merged.Contains(visitor))

	// Port policy: any unprivileged port, narrowed to what the host
	// actually exposes.
	unprivileged := infset.AllOrdered[int]()
	for p := 0; p < 1024; p++ {
		unprivileged.Remove(p)
	}
	exposed := infset.NewOrdered(80, 443, 8080, 9090)
	reachable := unprivileged.Intersection(exposed)
	logger.Info("reachable ports ", reachable)

	doc, _ := json.Marshal(reachable)
	logger.Info("policy document ", string(doc))
}
