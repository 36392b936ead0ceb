package models

import "time"

const (
	GameTypeProd = "PROD"
	GameTypeTest = "TEST"
	GameTypeUAT  = "UAT"
)

const (
	PortTypeFixed = "fixed"
	PortTypeRange = "range"
)

const (
	ServerGameTypeUDP = "UDP"
	ServerGameTypeTCP = "TCP"
)

func ValidGameType(t string) bool {
	return t == GameTypeProd || t == GameTypeTest || t == GameTypeUAT
}

func ValidServerGameType(t string) bool {
	return t == ServerGameTypeUDP || t == ServerGameTypeTCP
}

// GameParent is the root identity record for a game product. GameID is
// immutable once created; APIToken is the opaque secret presented by
// external game clients.
type GameParent struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	GameID   string `gorm:"uniqueIndex;size:64;not null" json:"game_id"`
	GameName string `gorm:"size:255;not null" json:"game_name"`
	APIToken string `gorm:"column:api_token;uniqueIndex;size:128;not null" json:"api_token"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

// GameVersion is one deployable configuration of a game. The numeric ID is
// what external clients send as version_id on the public lookup endpoint.
// Exactly one of Port or (PortStart, PortEnd) is populated, according to
// PortType.
type GameVersion struct {
	ID        uint      `gorm:"primaryKey" json:"version_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	GameID         string `gorm:"size:64;not null;index;uniqueIndex:uniq_game_version" json:"game_id"`
	GameVersion    string `gorm:"size:64;not null;uniqueIndex:uniq_game_version" json:"game_version"`
	Description    string `gorm:"type:text;not null" json:"description"`
	PortType       string `gorm:"size:16;not null;default:fixed" json:"port_type"`
	Port           *int   `json:"port,omitempty"`
	PortStart      *int   `json:"port_start,omitempty"`
	PortEnd        *int   `json:"port_end,omitempty"`
	APIURL         string `gorm:"column:api_url;size:512;not null" json:"api_url"`
	Type           string `gorm:"size:16;index:idx_type_active;not null" json:"type"`
	MatchMakingURL string `gorm:"size:512" json:"match_making_url,omitempty"`
	ServerGameIP   string `gorm:"size:64;not null" json:"server_game_ip"`
	ServerGameType string `gorm:"size:8;not null" json:"server_game_type"`
	IsActive       bool   `gorm:"default:true;index:idx_type_active" json:"is_active"`
}

// Game is the merged parent+version view returned by the legacy combined
// surface.
type Game struct {
	GameID    string    `json:"game_id"`
	GameName  string    `json:"game_name"`
	APIToken  string    `json:"api_token"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	GameVersion    string `json:"game_version"`
	Description    string `json:"description"`
	PortType       string `json:"port_type"`
	Port           *int   `json:"port,omitempty"`
	PortStart      *int   `json:"port_start,omitempty"`
	PortEnd        *int   `json:"port_end,omitempty"`
	APIURL         string `json:"api_url"`
	Type           string `json:"type"`
	MatchMakingURL string `json:"match_making_url,omitempty"`
	ServerGameIP   string `json:"server_game_ip"`
	ServerGameType string `json:"server_game_type"`
}

// MergeGame flattens a parent and one of its versions into the combined view.
func MergeGame(parent *GameParent, version *GameVersion) *Game {
	return &Game{
		GameID:         parent.GameID,
		GameName:       parent.GameName,
		APIToken:       parent.APIToken,
		IsActive:       parent.IsActive,
		CreatedAt:      parent.CreatedAt,
		UpdatedAt:      parent.UpdatedAt,
		GameVersion:    version.GameVersion,
		Description:    version.Description,
		PortType:       version.PortType,
		Port:           version.Port,
		PortStart:      version.PortStart,
		PortEnd:        version.PortEnd,
		APIURL:         version.APIURL,
		Type:           version.Type,
		MatchMakingURL: version.MatchMakingURL,
		ServerGameIP:   version.ServerGameIP,
		ServerGameType: version.ServerGameType,
	}
}
