package registry

// Raw labels appear in the source both with and without diacritics; both
// spellings map to the same key.

var activityMapping = map[string]string{
	"ESCOLARIDAD":                                "escolaridad",
	"TRAYECTORIA POLITICA":                       "exp_politica",
	"TRAYECTORIA POLÍTICA":                       "exp_politica",
	"INICIATIVA PRIVADA":                         "exp_laboral_privada",
	"EXPERIENCIA LEGISLATIVA":                    "exp_leg_previa",
	"ADMINISTRACION PUBLICA FEDERAL":             "exp_apf",
	"ADMINISTRACIÓN PÚBLICA FEDERAL":             "exp_apf",
	"ADMINISTRACION PUBLICA LOCAL":               "exp_aplocal",
	"ADMINISTRACIÓN PÚBLICA LOCAL":               "exp_aplocal",
	"CARGOS EN LEGISLATURAS LOCALES O FEDERALES": "cargos_legislativos_previa",
	"CARGOS DE ELECCION POPULAR":                 "cargos_electos_previos",
	"CARGOS DE ELECCIÓN POPULAR":                 "cargos_electos_previos",
	"ASOCIACIONES A LAS QUE PERTENECE":           "exp_asociaciones",
	"ACTIVIDADES DOCENTES":                       "exp_docente",
	"PUBLICACIONES":                              "publicaciones",
	"Actividad Empresarial":                      "exp_empresarial",
	"LOGROS DEPORTIVOS MAS DESTACADOS":           "logros_deportivos",
	"LOGROS DEPORTIVOS MÁS DESTACADOS":           "logros_deportivos",
}

var partyMapping = map[string]string{
	"PRI01":                     "PRI",
	"PAN":                       "PAN",
	"PRD01":                     "PRD",
	"LOGVRD":                    "PVerde",
	"LOGPT":                     "PT",
	"PANAL":                     "PANAL",
	"LOGO_MOVIMIENTO_CIUDADANO": "MC",
	"CONVERGENCIA":              "CONVERGENCIA",
	"PASC":                      "PASC",
	"LOGOMORENA":                "MORENA",
	"LOGO_SP":                   "SP",
	"LOGO_PT":                   "PT",
	"ENCUENTRO":                 "ENCUENTRO",
	"PRI":                       "PRI",
	"MORENA":                    "MORENA",
	"VERDE":                     "PVerde",
	"PT":                        "PT",
	"MC":                        "MC",
}

var stateMapping = map[string]string{
	"Aguascalientes":                 "AGS",
	"Baja California":                "BC",
	"Baja California Sur":            "BCS",
	"Campeche":                       "CAMP",
	"Chiapas":                        "CHIS",
	"Chihuahua":                      "CHIH",
	"Ciudad de México":               "CDMX",
	"Coahuila de Zaragoza":           "COAH",
	"Colima":                         "COL",
	"Durango":                        "DGO",
	"Guanajuato":                     "GTO",
	"Guerrero":                       "GRO",
	"Hidalgo":                        "HGO",
	"Jalisco":                        "JAL",
	"México":                         "MEX",
	"Michoacán de Ocampo":            "MICH",
	"Morelos":                        "MOR",
	"Nayarit":                        "NAY",
	"Nuevo León":                     "NL",
	"Oaxaca":                         "OAX",
	"Puebla":                         "PUE",
	"Querétaro":                      "QRO",
	"Quintana Roo":                   "QR",
	"San Luis Potosí":                "SLP",
	"Sinaloa":                        "SIN",
	"Sonora":                         "SON",
	"Tabasco":                        "TAB",
	"Tamaulipas":                     "TAMPS",
	"Tlaxcala":                       "TLAX",
	"Veracruz de Ignacio de la Llave": "VER",
	"Yucatán":                        "YUC",
	"Zacatecas":                      "ZAC",
	// Common variants seen in older extractions.
	"Mexico":            "MEX",
	"Michoacan":         "MICH",
	"Nuevo Leon":        "NL",
	"Queretaro":         "QRO",
	"San Luis Potosi":   "SLP",
	"Yucatan":           "YUC",
	"Distrito Federal":  "CDMX",
	"DF":                "CDMX",
	"Baja California Norte": "BC",
	"Edomex":            "MEX",
	"Estado de Mexico":  "MEX",
	"Estado de México":  "MEX",
}

var electionMapping = map[string]string{
	"Mayoria Relativa":             "mr",
	"Mayoría Relativa":             "mr",
	"Representacion Proporcional":  "rp",
	"Representación Proporcional":  "rp",
	"Representación proporcional":  "rp",
}

var legislatureMapping = map[string]string{
	"LXI":   "51",
	"LXII":  "52",
	"LXIII": "53",
	"LXIV":  "54",
	"LXV":   "55",
	"LXVI":  "56",
}

var committeeMapping = map[string]string{
	"ORDINARIA": "ordinaria",
	"COMITE":    "comite",
	"COMITÉ":    "comite",
	"ESPECIAL":  "especial",
	"BICAMARAL": "bicamaral",
}
