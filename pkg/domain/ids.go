// Package domain defines the identifier value types shared across the
// central registry. Identifiers are immutable, structurally comparable and
// serialize to a canonical string form used for logging and lookup keys:
//
//	MEMBER:instance/class/code
//	SUBSYSTEM:instance/class/code/subsystem
//	SERVER:instance/class/code/server
//
// Construction validates that required segments are non-empty; checking an
// identifier against the registry is the caller's job.
package domain

import (
	"fmt"
	"strings"

	dErrors "centreg/pkg/domain-errors"
)

// Identifier type tags used in the canonical string form.
const (
	TypeMember    = "MEMBER"
	TypeSubsystem = "SUBSYSTEM"
	TypeServer    = "SERVER"
)

// MemberID identifies an organizational member of the federation.
type MemberID struct {
	Instance    string
	MemberClass string
	MemberCode  string
}

// NewMemberID validates segments and builds a MemberID.
func NewMemberID(instance, memberClass, memberCode string) (MemberID, error) {
	id := MemberID{Instance: instance, MemberClass: memberClass, MemberCode: memberCode}
	if err := requireSegments(map[string]string{
		"instance":     instance,
		"member class": memberClass,
		"member code":  memberCode,
	}); err != nil {
		return MemberID{}, err
	}
	return id, nil
}

// IsZero reports whether the identifier is the zero value.
func (m MemberID) IsZero() bool {
	return m == MemberID{}
}

// ServerID builds the identifier of a security server this member would
// operate under the given server code.
func (m MemberID) ServerID(serverCode string) SecurityServerID {
	return SecurityServerID{Instance: m.Instance, MemberClass: m.MemberClass, MemberCode: m.MemberCode, ServerCode: serverCode}
}

func (m MemberID) String() string {
	return fmt.Sprintf("%s:%s/%s/%s", TypeMember, m.Instance, m.MemberClass, m.MemberCode)
}

// ClientID identifies a client of a security server: either a member itself
// (empty SubsystemCode) or one of its subsystems.
type ClientID struct {
	MemberID
	SubsystemCode string
}

// NewClientID builds a ClientID for the member itself.
func NewClientID(instance, memberClass, memberCode string) (ClientID, error) {
	member, err := NewMemberID(instance, memberClass, memberCode)
	if err != nil {
		return ClientID{}, err
	}
	return ClientID{MemberID: member}, nil
}

// NewSubsystemID builds a ClientID for a subsystem of the member.
func NewSubsystemID(instance, memberClass, memberCode, subsystemCode string) (ClientID, error) {
	member, err := NewMemberID(instance, memberClass, memberCode)
	if err != nil {
		return ClientID{}, err
	}
	if strings.TrimSpace(subsystemCode) == "" {
		return ClientID{}, dErrors.New(dErrors.CodeInvalidInput, "subsystem code is required")
	}
	return ClientID{MemberID: member, SubsystemCode: subsystemCode}, nil
}

// MemberClientID converts a MemberID into the ClientID addressing the member
// itself.
func MemberClientID(m MemberID) ClientID {
	return ClientID{MemberID: m}
}

// IsSubsystem reports whether the client is a subsystem rather than the
// member itself. A subsystem is never a valid security server owner.
func (c ClientID) IsSubsystem() bool {
	return c.SubsystemCode != ""
}

// Member returns the member portion of the client identifier.
func (c ClientID) Member() MemberID {
	return c.MemberID
}

func (c ClientID) IsZero() bool {
	return c == ClientID{}
}

func (c ClientID) String() string {
	if c.IsSubsystem() {
		return fmt.Sprintf("%s:%s/%s/%s/%s", TypeSubsystem, c.Instance, c.MemberClass, c.MemberCode, c.SubsystemCode)
	}
	return c.MemberID.String()
}

// SecurityServerID identifies a security server operated by a member.
type SecurityServerID struct {
	Instance    string
	MemberClass string
	MemberCode  string
	ServerCode  string
}

// NewSecurityServerID validates segments and builds a SecurityServerID.
func NewSecurityServerID(instance, memberClass, memberCode, serverCode string) (SecurityServerID, error) {
	id := SecurityServerID{Instance: instance, MemberClass: memberClass, MemberCode: memberCode, ServerCode: serverCode}
	if err := requireSegments(map[string]string{
		"instance":     instance,
		"member class": memberClass,
		"member code":  memberCode,
		"server code":  serverCode,
	}); err != nil {
		return SecurityServerID{}, err
	}
	return id, nil
}

// Owner derives the owning member by dropping the server code.
func (s SecurityServerID) Owner() MemberID {
	return MemberID{Instance: s.Instance, MemberClass: s.MemberClass, MemberCode: s.MemberCode}
}

// MatchesClient reports whether the client identifies this server's owner.
// Owners are always full members, so a subsystem never matches.
func (s SecurityServerID) MatchesClient(c ClientID) bool {
	return !c.IsSubsystem() && s.Owner() == c.Member()
}

func (s SecurityServerID) IsZero() bool {
	return s == SecurityServerID{}
}

func (s SecurityServerID) String() string {
	return fmt.Sprintf("%s:%s/%s/%s/%s", TypeServer, s.Instance, s.MemberClass, s.MemberCode, s.ServerCode)
}

// ParseClientID parses the canonical MEMBER/SUBSYSTEM string form.
func ParseClientID(s string) (ClientID, error) {
	typ, segments, err := splitCanonical(s)
	if err != nil {
		return ClientID{}, err
	}
	switch typ {
	case TypeMember:
		if len(segments) != 3 {
			return ClientID{}, dErrors.Newf(dErrors.CodeInvalidInput, "member identifier needs 3 segments, got %d", len(segments))
		}
		return NewClientID(segments[0], segments[1], segments[2])
	case TypeSubsystem:
		if len(segments) != 4 {
			return ClientID{}, dErrors.Newf(dErrors.CodeInvalidInput, "subsystem identifier needs 4 segments, got %d", len(segments))
		}
		return NewSubsystemID(segments[0], segments[1], segments[2], segments[3])
	default:
		return ClientID{}, dErrors.Newf(dErrors.CodeInvalidInput, "unexpected identifier type %q", typ)
	}
}

// ParseSecurityServerID parses the canonical SERVER string form.
func ParseSecurityServerID(s string) (SecurityServerID, error) {
	typ, segments, err := splitCanonical(s)
	if err != nil {
		return SecurityServerID{}, err
	}
	if typ != TypeServer {
		return SecurityServerID{}, dErrors.Newf(dErrors.CodeInvalidInput, "unexpected identifier type %q", typ)
	}
	if len(segments) != 4 {
		return SecurityServerID{}, dErrors.Newf(dErrors.CodeInvalidInput, "server identifier needs 4 segments, got %d", len(segments))
	}
	return NewSecurityServerID(segments[0], segments[1], segments[2], segments[3])
}

func splitCanonical(s string) (string, []string, error) {
	typ, rest, ok := strings.Cut(s, ":")
	if !ok || typ == "" || rest == "" {
		return "", nil, dErrors.Newf(dErrors.CodeInvalidInput, "malformed identifier %q", s)
	}
	return typ, strings.Split(rest, "/"), nil
}

func requireSegments(segments map[string]string) error {
	for name, value := range segments {
		if strings.TrimSpace(value) == "" {
			return dErrors.Newf(dErrors.CodeInvalidInput, "%s is required", name)
		}
	}
	return nil
}
