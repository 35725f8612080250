package handlers

// Callback data prefixes. The payload follows after ':'.
const (
	CallbackHorarioDay    = "horario_day"    // horario_day:<weekday index>
	CallbackHorarioDel    = "horario_del"    // horario_del:<weekday index>:<HH:MM-HH:MM>
	CallbackHorarioBack   = "horario_back"   // back to day selection
	CallbackHorarioSave   = "horario_save"   // persist the draft
	CallbackHorarioCancel = "horario_cancel" // discard the draft
	CallbackTutoriaProf   = "tutoria_prof"   // tutoria_prof:<teacher id>
	CallbackSolicitudOK   = "solicitud_ok"   // solicitud_ok:<request id>
	CallbackSolicitudNo   = "solicitud_no"   // solicitud_no:<request id>
	CallbackRegistroRol   = "registro_rol"   // registro_rol:<estudiante|profesor>
)

// Session data keys used by the dialogs.
const (
	dataKeyDraft     = "horario_draft"
	dataKeyDay       = "horario_day"
	dataKeyTeacherID = "tutoria_teacher_id"
)

const accessMessageMaxLength = 300
