// Package timezone keeps the application clock in a single configured location.
//
// The location defaults to UTC and is replaced at startup:
//
//	if err := timezone.Init(cfg.App.Timezone); err != nil { ... }
//	now := timezone.Now()
//	stamp := timezone.Format(room.CreatedAt, constant.DateFormat)
//
// Names must come from the IANA database, e.g. "UTC", "Asia/Jakarta" or
// "Europe/London". The value is read from the APP_TIMEZONE variable.
package timezone
