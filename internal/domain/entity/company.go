package entity

import "time"

// Company representa una organización. De solo lectura para este núcleo:
// ningún caso de uso la muta.
type Company struct {
	ID        string
	Name      string
	Location  string
	CreatedAt time.Time
}
