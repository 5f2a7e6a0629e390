package server

//go:generate swag init -g internal/server/swagger.go -o docs

// @title Concord API
// @version 0.1
// @description Agreement scoring between the automated Super Analyst scorer and human reviewers.
// @contact.name Concord Maintainers
// @contact.url https://github.com/superanalyst/concord
// @BasePath /
