package database

import (
	"errors"
	"strings"
)

// ErrDuplicate is returned by repositories when a unique constraint rejects a write.
var ErrDuplicate = errors.New("duplicate key")

// LikeEscape is the escape character used with Contains. A backslash would need
// different quoting on mysql and sqlite.
const LikeEscape = "!"

var likeReplacer = strings.NewReplacer(LikeEscape, LikeEscape+LikeEscape, "%", LikeEscape+"%", "_", LikeEscape+"_")

// Contains returns a lowercased LIKE pattern matching term as a literal
// substring. Use it with "LIKE ? ESCAPE '!'".
func Contains(term string) string {
	return "%" + likeReplacer.Replace(strings.ToLower(term)) + "%"
}
