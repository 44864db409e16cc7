package entity

import (
	"strings"
	"time"
)

// Estados del modo en línea.
const (
	OnlineStatusOnline  = "online"
	OnlineStatusOffline = "offline"
)

// OnlineStatus resultado de la verificación de dependencias (registro y broker de mensajes).
type OnlineStatus struct {
	Database  bool
	Broker    bool
	CheckedAt time.Time
}

// Online informa si ambas dependencias respondieron.
func (s OnlineStatus) Online() bool {
	return s.Database && s.Broker
}

// Status devuelve "online" u "offline".
func (s OnlineStatus) Status() string {
	if s.Online() {
		return OnlineStatusOnline
	}
	return OnlineStatusOffline
}

// Reason compone el motivo para el cajero nombrando cada dependencia caída. Vacío si está en línea.
func (s OnlineStatus) Reason() string {
	if s.Online() {
		return ""
	}
	var failed []string
	if !s.Database {
		failed = append(failed, "la base de datos de clientes no responde")
	}
	if !s.Broker {
		failed = append(failed, "el broker de mensajes no responde")
	}
	return "Modo en línea no disponible: " + strings.Join(failed, "; ")
}
