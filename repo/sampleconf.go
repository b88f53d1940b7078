package repo

// sampleConfig mirrors sample-genemuffin.conf at the repository root. It
// is written to the data directory on first run.
const sampleConfig = `[Application Options]

; ------------------------------------------------------------------------------
; Data settings
; ------------------------------------------------------------------------------

; The directory to store data such as the genemuffin database and the
; configuration file.
; datadir=~/.genemuffin

; ------------------------------------------------------------------------------
; Log settings
; ------------------------------------------------------------------------------

; The directory to store log files.
; logdir=~/.genemuffin/logs

; The logging level [debug, info, notice, warning, error, critical]
; loglevel=info

; ------------------------------------------------------------------------------
; API settings
; ------------------------------------------------------------------------------

; The interface and port the JSON API gateway listens on.
; gatewayaddr=127.0.0.1:4002

; Authentication credentials for the JSON API. If neither a username/password
; nor a cookie is set the API is unauthenticated.
; apiusername=
; apipassword=

; A cookie to use for authentication in addition to the username and password.
; apicookie=

; Disable CORS on the API.
; nocors=1

; Only allow API connections from these IP addresses.
; allowedip=127.0.0.1

; When this option is used only the public GET endpoints will be exposed.
; publicgateway=1

; Use SSL on the API.
; ssl=1
; sslcertfile=
; sslkeyfile=

; ------------------------------------------------------------------------------
; Profile settings
; ------------------------------------------------------------------------------

; Override the URL of the remote profile API.
; profileapi=https://randomuser.me/api

; Serve canned profile data instead of hitting the remote profile API.
; testdata=1
`
