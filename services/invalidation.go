package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/monsieursam/hacka-builder-sub001/config"
)

// InvalidationChannel is the redis channel front-end processes subscribe to
// for view revalidation.
const InvalidationChannel = "view-invalidations"

// NotifyViewsChanged publishes the changed view paths. Fire-and-forget: a
// failed or unconfigured publisher never affects the mutation that
// produced the paths.
func NotifyViewsChanged(paths []string) {
	if len(paths) == 0 {
		return
	}
	if config.RDB == nil {
		log.Printf("views changed: %s", strings.Join(paths, ", "))
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"paths":      paths,
		"changed_at": time.Now().UTC(),
	})
	if err != nil {
		log.Printf("Warning: failed to encode view invalidation: %v", err)
		return
	}

	if err := config.RDB.Publish(context.Background(), InvalidationChannel, payload).Err(); err != nil {
		log.Printf("Warning: failed to publish view invalidation: %v", err)
	}
}
