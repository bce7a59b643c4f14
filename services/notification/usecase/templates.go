package usecase

import (
	htmltemplate "html/template"
	"text/template"
)

type mailTemplate struct {
	subject *template.Template
	text    *template.Template
	html    *htmltemplate.Template
}

func mustTemplate(name, subject, text, html string) mailTemplate {
	return mailTemplate{
		subject: template.Must(template.New(name + ".subject").Option("missingkey=zero").Parse(subject)),
		text:    template.Must(template.New(name + ".txt").Option("missingkey=zero").Parse(text)),
		html:    htmltemplate.Must(htmltemplate.New(name + ".html").Option("missingkey=zero").Parse(html)),
	}
}

var mailTemplates = map[string]mailTemplate{
	"service-nearby": mustTemplate("service-nearby",
		`Nuevo servicio cerca tuyo: {{.service_type}}`,
		`Hola {{.name}},

Hay un nuevo servicio de {{.service_type}} a {{.distance}} km de tu zona.
Paciente: {{.patient_name}}
Fecha: {{.scheduled_date}} ({{.duration}} horas)

Respondé desde la app: {{.link}}
`,
		`<p>Hola {{.name}},</p>
<p>Hay un nuevo servicio de <strong>{{.service_type}}</strong> a {{.distance}} km de tu zona.</p>
<ul><li>Paciente: {{.patient_name}}</li><li>Fecha: {{.scheduled_date}} ({{.duration}} horas)</li></ul>
<p><a href="{{.link}}">Ver el servicio</a></p>`),

	"caregiver-interested": mustTemplate("caregiver-interested",
		`{{.caregiver_name}} está interesado en tu servicio`,
		`Hola {{.name}},

{{.caregiver_name}} quiere tomar tu servicio de {{.service_type}}.
Revisá los candidatos y elegí a tu cuidador: {{.link}}
`,
		`<p>Hola {{.name}},</p>
<p><strong>{{.caregiver_name}}</strong> quiere tomar tu servicio de {{.service_type}}.</p>
<p><a href="{{.link}}">Ver candidatos</a></p>`),

	"caregiver-selected": mustTemplate("caregiver-selected",
		`Fuiste seleccionado para un servicio de {{.service_type}}`,
		`Hola {{.name}},

La familia {{.family_name}} te eligió para cuidar a {{.patient_name}}.
Detalles del servicio: {{.link}}
`,
		`<p>Hola {{.name}},</p>
<p>La familia <strong>{{.family_name}}</strong> te eligió para cuidar a {{.patient_name}}.</p>
<p><a href="{{.link}}">Ver detalles</a></p>`),

	"payment-received": mustTemplate("payment-received",
		`Recibimos tu pago`,
		`Hola {{.name}},

Recibimos el pago de {{.amount}} por el servicio de {{.service_type}}.
El monto queda retenido hasta que el servicio finalice.
`,
		`<p>Hola {{.name}},</p>
<p>Recibimos el pago de <strong>{{.amount}}</strong> por el servicio de {{.service_type}}.</p>
<p>El monto queda retenido hasta que el servicio finalice.</p>`),

	"payment-released": mustTemplate("payment-released",
		`Tu pago fue liberado`,
		`Hola {{.name}},

Liberamos {{.net_amount}} por el servicio de {{.service_type}}.
`,
		`<p>Hola {{.name}},</p>
<p>Liberamos <strong>{{.net_amount}}</strong> por el servicio de {{.service_type}}.</p>`),

	"chat-message": mustTemplate("chat-message",
		`Nuevo mensaje de {{.sender_name}}`,
		`Hola {{.name}},

{{.sender_name}} te escribió sobre el servicio de {{.service_type}}:

"{{.preview}}"

Respondé desde la app: {{.link}}
`,
		`<p>Hola {{.name}},</p>
<p><strong>{{.sender_name}}</strong> te escribió sobre el servicio de {{.service_type}}:</p>
<blockquote>{{.preview}}</blockquote>
<p><a href="{{.link}}">Responder</a></p>`),
}
