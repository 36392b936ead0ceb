package registry

import (
	"github.com/kosdesign/game-center/internal/apperr"
	"github.com/kosdesign/game-center/internal/models"
)

const maxPort = 65535

func validPort(p *int) bool { return p != nil && *p > 0 && *p <= maxPort }

// validateVersionData checks a full create payload, including the port
// invariant: fixed carries exactly port, range carries exactly
// port_start < port_end.
func validateVersionData(d VersionData) error {
	if d.GameVersion == "" {
		return apperr.Validation("game_version is required")
	}
	if d.Description == "" {
		return apperr.Validation("description is required")
	}
	if d.APIURL == "" {
		return apperr.Validation("api_url is required")
	}
	if d.ServerGameIP == "" {
		return apperr.Validation("server_game_ip is required")
	}
	if !models.ValidGameType(d.Type) {
		return apperr.Validation("type must be one of PROD, TEST, UAT")
	}
	if !models.ValidServerGameType(d.ServerGameType) {
		return apperr.Validation("server_game_type must be UDP or TCP")
	}
	return validatePorts(d.PortType, d.Port, d.PortStart, d.PortEnd)
}

func validatePorts(portType string, port, start, end *int) error {
	switch portType {
	case models.PortTypeFixed:
		if !validPort(port) {
			return apperr.Validation("port is required for port_type fixed")
		}
		if start != nil || end != nil {
			return apperr.Validation("port_start/port_end must not be set for port_type fixed")
		}
	case models.PortTypeRange:
		if !validPort(start) || !validPort(end) {
			return apperr.Validation("port_start and port_end are required for port_type range")
		}
		if *start >= *end {
			return apperr.Validation("port_start must be less than port_end")
		}
		if port != nil {
			return apperr.Validation("port must not be set for port_type range")
		}
	default:
		return apperr.Validation("port_type must be fixed or range")
	}
	return nil
}

// validateVersionUpdate checks a partial update against the record it will
// be applied to. Port fields are only validated when the update touches
// them; a port_type switch must carry the fields of the new shape.
func validateVersionUpdate(existing *models.GameVersion, u VersionUpdate) error {
	if u.Type != nil && !models.ValidGameType(*u.Type) {
		return apperr.Validation("type must be one of PROD, TEST, UAT")
	}
	if u.ServerGameType != nil && !models.ValidServerGameType(*u.ServerGameType) {
		return apperr.Validation("server_game_type must be UDP or TCP")
	}
	if u.GameVersion != nil && *u.GameVersion == "" {
		return apperr.Validation("game_version must not be empty")
	}

	if u.PortType == nil && u.Port == nil && u.PortStart == nil && u.PortEnd == nil {
		return nil
	}

	portType := existing.PortType
	if u.PortType != nil {
		portType = *u.PortType
	}
	port, start, end := existing.Port, existing.PortStart, existing.PortEnd
	if u.Port != nil {
		port = u.Port
	}
	if u.PortStart != nil {
		start = u.PortStart
	}
	if u.PortEnd != nil {
		end = u.PortEnd
	}
	// switching shape drops the old shape's fields unless resupplied
	if u.PortType != nil && *u.PortType != existing.PortType {
		switch *u.PortType {
		case models.PortTypeRange:
			port = u.Port
		case models.PortTypeFixed:
			start, end = u.PortStart, u.PortEnd
		}
	}
	return validatePorts(portType, port, start, end)
}
