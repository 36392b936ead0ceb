package registry

import "github.com/kosdesign/game-center/internal/models"

// VersionData is the full payload for creating a version.
type VersionData struct {
	GameVersion    string `json:"game_version"`
	Description    string `json:"description"`
	PortType       string `json:"port_type"`
	Port           *int   `json:"port"`
	PortStart      *int   `json:"port_start"`
	PortEnd        *int   `json:"port_end"`
	APIURL         string `json:"api_url"`
	Type           string `json:"type"`
	MatchMakingURL string `json:"match_making_url"`
	ServerGameIP   string `json:"server_game_ip"`
	ServerGameType string `json:"server_game_type"`
}

// CreateGameInput registers a game and its first version in one call.
type CreateGameInput struct {
	GameID   string `json:"game_id"`
	GameName string `json:"game_name"`
	VersionData
}

// VersionUpdate is a partial update; nil fields are left untouched.
type VersionUpdate struct {
	GameVersion    *string `json:"game_version"`
	Description    *string `json:"description"`
	PortType       *string `json:"port_type"`
	Port           *int    `json:"port"`
	PortStart      *int    `json:"port_start"`
	PortEnd        *int    `json:"port_end"`
	APIURL         *string `json:"api_url"`
	Type           *string `json:"type"`
	MatchMakingURL *string `json:"match_making_url"`
	ServerGameIP   *string `json:"server_game_ip"`
	ServerGameType *string `json:"server_game_type"`
	IsActive       *bool   `json:"is_active"`
}

// UpdateGameInput is the legacy combined update: an optional parent rename
// plus a partial version update.
type UpdateGameInput struct {
	GameName *string `json:"game_name"`
	VersionUpdate
}

func (d VersionData) toModel(gameID string) *models.GameVersion {
	return &models.GameVersion{
		GameID:         gameID,
		GameVersion:    d.GameVersion,
		Description:    d.Description,
		PortType:       d.PortType,
		Port:           d.Port,
		PortStart:      d.PortStart,
		PortEnd:        d.PortEnd,
		APIURL:         d.APIURL,
		Type:           d.Type,
		MatchMakingURL: d.MatchMakingURL,
		ServerGameIP:   d.ServerGameIP,
		ServerGameType: d.ServerGameType,
		IsActive:       true,
	}
}

// toMap renders the payload as it goes into a created changelog entry.
func (d VersionData) toMap() map[string]interface{} {
	m := map[string]interface{}{
		"game_version":     d.GameVersion,
		"description":      d.Description,
		"port_type":        d.PortType,
		"api_url":          d.APIURL,
		"type":             d.Type,
		"server_game_ip":   d.ServerGameIP,
		"server_game_type": d.ServerGameType,
	}
	if d.Port != nil {
		m["port"] = *d.Port
	}
	if d.PortStart != nil {
		m["port_start"] = *d.PortStart
	}
	if d.PortEnd != nil {
		m["port_end"] = *d.PortEnd
	}
	if d.MatchMakingURL != "" {
		m["match_making_url"] = d.MatchMakingURL
	}
	return m
}

// fields lists the set keys in declaration order, so changelog entries come
// out deterministic.
func (u VersionUpdate) fields() []string {
	var out []string
	if u.GameVersion != nil {
		out = append(out, "game_version")
	}
	if u.Description != nil {
		out = append(out, "description")
	}
	if u.PortType != nil {
		out = append(out, "port_type")
	}
	if u.Port != nil {
		out = append(out, "port")
	}
	if u.PortStart != nil {
		out = append(out, "port_start")
	}
	if u.PortEnd != nil {
		out = append(out, "port_end")
	}
	if u.APIURL != nil {
		out = append(out, "api_url")
	}
	if u.Type != nil {
		out = append(out, "type")
	}
	if u.MatchMakingURL != nil {
		out = append(out, "match_making_url")
	}
	if u.ServerGameIP != nil {
		out = append(out, "server_game_ip")
	}
	if u.ServerGameType != nil {
		out = append(out, "server_game_type")
	}
	if u.IsActive != nil {
		out = append(out, "is_active")
	}
	return out
}

// value returns the requested value for a set field.
func (u VersionUpdate) value(field string) interface{} {
	switch field {
	case "game_version":
		return *u.GameVersion
	case "description":
		return *u.Description
	case "port_type":
		return *u.PortType
	case "port":
		return *u.Port
	case "port_start":
		return *u.PortStart
	case "port_end":
		return *u.PortEnd
	case "api_url":
		return *u.APIURL
	case "type":
		return *u.Type
	case "match_making_url":
		return *u.MatchMakingURL
	case "server_game_ip":
		return *u.ServerGameIP
	case "server_game_type":
		return *u.ServerGameType
	case "is_active":
		return *u.IsActive
	}
	return nil
}

// versionFieldValue reads a version record field by its wire name.
func versionFieldValue(v *models.GameVersion, field string) interface{} {
	switch field {
	case "game_version":
		return v.GameVersion
	case "description":
		return v.Description
	case "port_type":
		return v.PortType
	case "port":
		return intOrNil(v.Port)
	case "port_start":
		return intOrNil(v.PortStart)
	case "port_end":
		return intOrNil(v.PortEnd)
	case "api_url":
		return v.APIURL
	case "type":
		return v.Type
	case "match_making_url":
		return v.MatchMakingURL
	case "server_game_ip":
		return v.ServerGameIP
	case "server_game_type":
		return v.ServerGameType
	case "is_active":
		return v.IsActive
	}
	return nil
}

// versionToMap snapshots the full record for deleted changelog entries.
func versionToMap(v *models.GameVersion) map[string]interface{} {
	m := map[string]interface{}{
		"game_id":          v.GameID,
		"game_version":     v.GameVersion,
		"description":      v.Description,
		"port_type":        v.PortType,
		"api_url":          v.APIURL,
		"type":             v.Type,
		"server_game_ip":   v.ServerGameIP,
		"server_game_type": v.ServerGameType,
		"is_active":        v.IsActive,
	}
	if v.Port != nil {
		m["port"] = *v.Port
	}
	if v.PortStart != nil {
		m["port_start"] = *v.PortStart
	}
	if v.PortEnd != nil {
		m["port_end"] = *v.PortEnd
	}
	if v.MatchMakingURL != "" {
		m["match_making_url"] = v.MatchMakingURL
	}
	return m
}

func intOrNil(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
