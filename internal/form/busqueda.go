package form

import "formapi/internal/model"

var busqueda = Layout{
	Type:     model.FormBusqueda,
	Template: "1.pdf",
	Filename: "Formulario_Busqueda.pdf",
	Required: []string{
		"nombre", "cedulaFacturacion", "direccion", "telefono",
		"nombresCompletos", "cedula", "estadoCivil", "nombresSolicitante",
		"cedulaSolicitante", "estadoCivilSolicitante", "declaracionUso",
		"recepcionDocumento",
	},
	Fields: []Field{
		// billing
		{Name: "nombre", At: Point{95, 665}},
		{Name: "cedulaFacturacion", At: Point{300, 635}},
		{Name: "direccion", At: Point{80, 612}},
		{Name: "correo", At: Point{135, 590}},
		{Name: "telefono", At: Point{440, 590}},

		// search subject
		{Name: "nombresCompletos", At: Point{95, 520}},
		{Name: "cedula", At: Point{270, 488}},
		{Name: "estadoCivil", At: Point{460, 488}},
		{Name: "nombresSolicitante", At: Point{180, 440}},
		{Name: "cedulaSolicitante", At: Point{390, 410}},
		{Name: "estadoCivilSolicitante", At: Point{140, 388}},
		{Name: "declaracionUso", At: Point{110, 366}},
	},
	Place: Point{390, 222},
	Date:  Point{340, 200},
	Reception: map[ReceptionMethod]Point{
		ReceptionInPerson:   {161, 183},
		ReceptionElectronic: {161, 143},
	},
	ReceptionEmail: Point{80, 107},
}
