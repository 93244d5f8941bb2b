// Package cheshire is a client for the Cheshire Cat conversational agent
// platform.
//
// A Client talks to one Cheshire Cat instance over HTTP and websockets:
//
//	c, err := cheshire.NewClient(cheshire.Options{Host: "localhost", Port: 1865, APIKey: key})
//	if err != nil {
//		return err
//	}
//	out, err := c.Message.SendWebSocket(ctx,
//		models.Message{MessageBase: models.MessageBase{Text: "hello"}},
//		transport.Identity{AgentID: "agent", UserID: "user-1"},
//		func(raw string) error {
//			fmt.Println("notification:", raw)
//			return nil
//		})
//
// Every call takes the agent and user it acts for as a transport.Identity,
// so one Client can serve many agents and users concurrently.
//
// Errors are typed; see package apierror.
package cheshire
