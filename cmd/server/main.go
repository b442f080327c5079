package main

import (
	"github.com/himanshu-suthar-simform/skillswap/internal/server"
)

// @title SkillSwap API
// @version 1.0
// @description Peer to peer skill exchange service.
// @BasePath /
func main() {
	server.Init()
}
