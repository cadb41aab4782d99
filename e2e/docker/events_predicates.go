package docker

import (
	"fmt"

	"github.com/docker/docker/api/types/events"
)

// ContainerCreated matches the creation of a runner-managed container from
// image and records its ID.
type ContainerCreated struct {
	image       string
	containerID *string
}

func NewContainerCreated(image string, containerID *string) *ContainerCreated {
	return &ContainerCreated{
		image:       image,
		containerID: containerID,
	}
}

func (p *ContainerCreated) String() string {
	return fmt.Sprintf(`container-created: image="%s"`, p.image)
}

func (p *ContainerCreated) check(e events.Message) bool {
	ok := e.Type == events.ContainerEventType &&
		e.Action == "create" &&
		e.Actor.Attributes["image"] == p.image &&
		e.Actor.Attributes["defi-runner.managed"] == "true"
	if ok {
		*p.containerID = e.Actor.ID
	}
	return ok
}

type ContainerStarted struct {
	containerID *string
}

func NewContainerStarted(containerID *string) *ContainerStarted {
	return &ContainerStarted{
		containerID: containerID,
	}
}

func (p *ContainerStarted) String() string {
	return fmt.Sprintf(`container-start: containerID="%s"`, *p.containerID)
}

func (p *ContainerStarted) check(e events.Message) bool {
	return e.Type == events.ContainerEventType &&
		e.Action == "start" &&
		e.Actor.ID == *p.containerID
}

type ContainerDies struct {
	containerID *string
}

func NewContainerDies(containerID *string) *ContainerDies {
	return &ContainerDies{
		containerID: containerID,
	}
}

func (p *ContainerDies) String() string {
	return fmt.Sprintf(`container-die: containerID="%s"`, *p.containerID)
}

func (p *ContainerDies) check(e events.Message) bool {
	return e.Type == events.ContainerEventType &&
		e.Action == "die" &&
		e.Actor.ID == *p.containerID
}

type ContainerDestroy struct {
	containerID *string
}

func NewContainerDestroy(containerID *string) *ContainerDestroy {
	return &ContainerDestroy{
		containerID: containerID,
	}
}

func (p *ContainerDestroy) String() string {
	return fmt.Sprintf(`container-destroy: containerID="%s"`, *p.containerID)
}

func (p *ContainerDestroy) check(e events.Message) bool {
	return e.Type == events.ContainerEventType &&
		e.Action == "destroy" &&
		e.Actor.ID == *p.containerID
}
