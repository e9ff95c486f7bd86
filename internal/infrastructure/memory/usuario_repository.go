// Package memory implementa los puertos de persistencia en memoria, para ejecución local
// (STORAGE_DRIVER=memory) y pruebas de punta a punta del API.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
	"github.com/jhoicas/usuarios-api/internal/domain/usuario"
)

var (
	_ repository.UsuarioRepository = (*UsuarioMem)(nil)
	_ repository.DocumentoChecker  = (*UsuarioMem)(nil)
	_ repository.RolRepository     = (*UsuarioMem)(nil)
)

// RolesPorDefecto roles con los que arranca el almacén en memoria.
var RolesPorDefecto = []entity.Rol{
	{IDRol: 1, Nombre: "ADMIN", Descripcion: "Administrador del sistema"},
	{IDRol: 2, Nombre: "USUARIO", Descripcion: "Usuario estándar"},
}

// UsuarioMem almacén en memoria con las mismas garantías de unicidad que los índices de la tabla
// usuarios: correo y (tipo, número) de documento.
type UsuarioMem struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]entity.Usuario
	byEmail map[string]int64
	byDoc   map[string]int64
	roles   map[int64]entity.Rol
}

// NewUsuarioMem crea el almacén con los roles dados (RolesPorDefecto si no se pasa ninguno).
func NewUsuarioMem(roles ...entity.Rol) *UsuarioMem {
	if len(roles) == 0 {
		roles = RolesPorDefecto
	}
	m := &UsuarioMem{
		nextID:  1,
		byID:    make(map[int64]entity.Usuario),
		byEmail: make(map[string]int64),
		byDoc:   make(map[string]int64),
		roles:   make(map[int64]entity.Rol, len(roles)),
	}
	for _, r := range roles {
		m.roles[r.IDRol] = r
	}
	return m
}

func docKey(tipo, numero string) string {
	return tipo + "\x00" + numero
}

// Guardar asigna el siguiente id y guarda una copia. Rechaza duplicados igual que la base.
func (m *UsuarioMem) Guardar(ctx context.Context, u *entity.Usuario) (*entity.Usuario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[u.CorreoElectronico]; ok {
		return nil, usuario.ErrCorreoDuplicado
	}
	key := docKey(u.TipoDocumento, u.NumeroDocumento)
	tieneDoc := strings.TrimSpace(u.TipoDocumento) != "" || strings.TrimSpace(u.NumeroDocumento) != ""
	if tieneDoc {
		if _, ok := m.byDoc[key]; ok {
			return nil, usuario.ErrDocumentoDuplicado
		}
	}

	id := m.nextID
	m.nextID++

	guardado := copiar(u)
	guardado.IDUsuario = &id
	m.byID[id] = guardado
	m.byEmail[u.CorreoElectronico] = id
	if tieneDoc {
		m.byDoc[key] = id
	}

	out := m.hidratar(guardado)
	return &out, nil
}

// ExistePorCorreoElectronico indica si el correo ya está registrado.
func (m *UsuarioMem) ExistePorCorreoElectronico(ctx context.Context, correo string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.byEmail[correo]
	return ok, nil
}

// ExistePorTipoYNumeroDocumento indica si el documento ya está registrado.
func (m *UsuarioMem) ExistePorTipoYNumeroDocumento(ctx context.Context, tipo, numero string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.byDoc[docKey(tipo, numero)]
	return ok, nil
}

// BuscarPorTipoYNumeroDocumento devuelve (nil, nil) si no existe.
func (m *UsuarioMem) BuscarPorTipoYNumeroDocumento(ctx context.Context, tipo, numero string) (*entity.Usuario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byDoc[docKey(tipo, numero)]
	if !ok {
		return nil, nil
	}
	out := m.hidratar(m.byID[id])
	return &out, nil
}

// BuscarPorCorreoElectronico devuelve (nil, nil) si no existe.
func (m *UsuarioMem) BuscarPorCorreoElectronico(ctx context.Context, correo string) (*entity.Usuario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byEmail[correo]
	if !ok {
		return nil, nil
	}
	out := m.hidratar(m.byID[id])
	return &out, nil
}

// ExistePorID indica si el rol está sembrado.
func (m *UsuarioMem) ExistePorID(ctx context.Context, idRol int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.roles[idRol]
	return ok, nil
}

// hidratar completa nombre y descripción del rol, como el LEFT JOIN del adaptador SQL.
// Requiere m.mu tomado.
func (m *UsuarioMem) hidratar(u entity.Usuario) entity.Usuario {
	out := copiar(&u)
	if out.Rol != nil {
		if r, ok := m.roles[out.Rol.IDRol]; ok {
			out.Rol = &r
		}
	}
	return out
}

// copiar hace una copia sin punteros compartidos con el llamador.
func copiar(u *entity.Usuario) entity.Usuario {
	out := *u
	if u.IDUsuario != nil {
		id := *u.IDUsuario
		out.IDUsuario = &id
	}
	if u.FechaNacimiento != nil {
		f := *u.FechaNacimiento
		out.FechaNacimiento = &f
	}
	if u.SalarioBase != nil {
		s := *u.SalarioBase
		out.SalarioBase = &s
	}
	if u.Rol != nil {
		r := *u.Rol
		out.Rol = &r
	}
	return out
}
