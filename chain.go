package primemap

type node[V any] struct {
	key   string
	value V
	next  *node[V]
}

// chain is a singly linked list of the nodes sharing a bucket.
type chain[V any] struct {
	head   *node[V]
	length int
}

func (c *chain[V]) find(key string) *node[V] {
	for n := c.head; n != nil; n = n.next {
		if n.key == key {
			return n
		}
	}

	return nil
}

// Appends a node to the tail of the chain. The caller makes sure the key is not in the chain yet.
func (c *chain[V]) push(key string, value V) {
	nn := &node[V]{key: key, value: value}
	c.length++

	if c.head == nil {
		c.head = nn
		return
	}

	n := c.head
	for n.next != nil {
		n = n.next
	}
	n.next = nn
}

// Unlinks the node holding `key`. Returns false if there was none.
func (c *chain[V]) remove(key string) bool {
	for link := &c.head; *link != nil; link = &(*link).next {
		if (*link).key == key {
			*link = (*link).next
			c.length--

			return true
		}
	}

	return false
}
