package nsq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProducer_PublishRejectsInvalidTopic(t *testing.T) {
	p := &Producer{}

	err := p.Publish("mail send!", map[string]string{"to": "a@b.c"})
	assert.ErrorContains(t, err, "invalid NSQ topic")
}

func TestProducer_PublishRejectsUnencodable(t *testing.T) {
	p := &Producer{}

	err := p.Publish("mail.send", make(chan int))
	assert.ErrorContains(t, err, "failed to marshal message")
}
