package models

// Rating de la sesión actual (entero 0..5, igual que el slider del front).
// Un rating por película, el último pisa al anterior. No se persiste.
type Rating struct {
	MovieID int `json:"movieId"`
	Value   int `json:"rating"`
}
