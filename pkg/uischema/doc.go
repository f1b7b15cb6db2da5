// Package uischema loads panel definitions from JSON or YAML documents. A
// document declares any number of panels keyed by id plus an optional
// translation catalog:
//
//	panels:
//	  deviceDetails:
//	    title: Device
//	    locale: en
//	    fields:
//	      - name: deviceClass
//	        label: Device Class
//	        value: {uid: /zport/dmd/Devices/Server/Linux, name: /Server/Linux}
//	translations:
//	  es:
//	    None: Ninguno
//
// Field values accept every shape model.Decode understands.
package uischema
