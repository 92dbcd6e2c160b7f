package dto

// ModificarDiasRequest entrada para cambiar los días de prueba de una cuenta.
type ModificarDiasRequest struct {
	Dias int `json:"dias" validate:"min=0"`
}

// UsuarioListResponse listado paginado de usuarios (solo admin).
type UsuarioListResponse struct {
	Items  []UsuarioResponse `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// EstadisticasResponse contadores del panel de administración.
type EstadisticasResponse struct {
	TotalUsuarios      int `json:"total_usuarios"`
	Superadmins        int `json:"superadmins"`
	UsuariosActivos    int `json:"usuarios_activos"`
	UsuariosPendientes int `json:"usuarios_pendientes"`
	UsuariosBloqueados int `json:"usuarios_bloqueados"`
	TotalColegios      int `json:"total_colegios"`
	TotalDocentes      int `json:"total_docentes"`
	TotalPermisos      int `json:"total_permisos"`
	NuevosUltimos7Dias int `json:"nuevos_ultimos_7_dias"`
}

// ProximoAVencer cuenta en prueba cercana a expirar.
type ProximoAVencer struct {
	Usuario       UsuarioResponse `json:"usuario"`
	DiasRestantes int             `json:"dias_restantes"`
}
