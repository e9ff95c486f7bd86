package entity

// Rol es la referencia a un rol del sistema. Usuario solo exige IDRol.
type Rol struct {
	IDRol       int64
	Nombre      string
	Descripcion string
}
