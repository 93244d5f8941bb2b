// Package models holds the request and response shapes of the Cheshire Cat
// API.
//
// Every type maps JSON keys field for field. Unknown keys in a response are
// ignored. Types whose fields the platform always sends implement Schema by
// listing those fields; the marshaller rejects a body missing any of them
// with an apierror.DeserializationError.
//
// Paths returned by RequiredFields use gjson syntax, so nested members are
// written as "setting.setting_id" and array elements as "settings.#.name".
package models
