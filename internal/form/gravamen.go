package form

import "formapi/internal/model"

var gravamen = Layout{
	Type:     model.FormGravamen,
	Template: "2.pdf",
	Filename: "Formulario_Gravamen.pdf",
	Required: []string{
		"nombre", "cedulaFacturacion", "direccion", "telefono",
		"apellidos", "cedulaCertificacion", "lugarInmueble",
		"usoCertificacion", "especifiqueUso", "recepcionDocumento",
		"cedulaSolicitante",
	},
	Fields: []Field{
		// billing
		{Name: "nombre", At: Point{95, 700}},
		{Name: "cedulaFacturacion", At: Point{300, 670}},
		{Name: "direccion", At: Point{80, 650}},
		{Name: "correo", At: Point{135, 625}},
		{Name: "telefono", At: Point{440, 625}},

		// certification
		{Name: "apellidos", At: Point{95, 570}},
		{Name: "cedulaCertificacion", At: Point{390, 540}},
		{Name: "estadoCivil", At: Point{140, 525}},
		{Name: "lugarInmueble", At: Point{95, 510}},
		{Name: "libro", At: Point{150, 450}},
		{Name: "numeroInscripcion", At: Point{320, 450}},
		{Name: "fechaInscripcion", At: Point{473, 455}},
		{Name: "tomo", At: Point{150, 420}},
		{Name: "repertorio", At: Point{320, 420}},
		{Name: "fichaRegistral", At: Point{490, 420}},
		{Name: "otro", At: Point{260, 395}, Default: "N/A"},
		{Name: "especifiqueUso", At: Point{140, 150}, Default: "N/A"},
		{Name: "cedulaSolicitante", At: Point{400, 120}},
	},
	Place: Point{400, 225},
	Date:  Point{340, 210},
	Usage: map[UsageReason]Point{
		UsageJudicial: {220, 296},
		UsageBanking:  {220, 260},
		UsagePublic:   {220, 221},
		UsageOther:    {220, 180},
	},
	Reception: map[ReceptionMethod]Point{
		ReceptionInPerson:   {398, 308},
		ReceptionElectronic: {398, 280},
	},
	ReceptionEmail: Point{360, 260},
}
