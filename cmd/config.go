package main

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`
	TxnMaxAttempts int    `env:"TXN_MAX_ATTEMPTS,default=3"`
}
