package main

// @title           ERA Learn Certificados API
// @version         1.0
// @description     Serviço de geração e verificação de certificados de conclusão de curso

// @contact.name   Suporte ERA Learn
// @contact.email  suporte@eralearn.com.br

// @host      localhost:8080
// @BasePath  /api
