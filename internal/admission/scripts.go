package admission

import "github.com/redis/go-redis/v9"

// KEYS: meta, ticket, cutoff, members, line. ARGV: user.
// Возвращает {ticket, ahead, cutoff} или {-1, 0, 0}, если очереди нет.
var joinScript = redis.NewScript(`
local ticket = redis.call('HGET', KEYS[4], ARGV[1])
if not ticket then
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return {-1, 0, 0}
	end
	ticket = redis.call('INCR', KEYS[2])
	redis.call('HSET', KEYS[4], ARGV[1], ticket)
	redis.call('ZADD', KEYS[5], ticket, ARGV[1])
	local ttl = redis.call('PTTL', KEYS[1])
	if ttl > 0 then
		redis.call('PEXPIRE', KEYS[4], ttl)
		redis.call('PEXPIRE', KEYS[5], ttl)
	end
else
	ticket = tonumber(ticket)
end
local cutoff = tonumber(redis.call('GET', KEYS[3]) or '0')
local ahead = 0
if ticket > cutoff then
	ahead = redis.call('ZCOUNT', KEYS[5], '(' .. cutoff, '(' .. ticket)
end
return {ticket, ahead, cutoff}
`)

// KEYS: meta, cutoff, line, admitted. ARGV: n, now (unix ms), capacity.
// Допускает до n следующих живых участников, но так, чтобы допущенных одновременно было не больше capacity
// (capacity 0 - без ограничения). Возвращает новый cutoff или -1, если очереди нет.
var admitScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
local cutoff = tonumber(redis.call('GET', KEYS[2]) or '0')
local limit = tonumber(ARGV[1])
local capacity = tonumber(ARGV[3])
if capacity > 0 then
	local free = capacity - redis.call('ZCARD', KEYS[4])
	if free < limit then
		limit = free
	end
end
if limit <= 0 then
	return cutoff
end
local batch = redis.call('ZRANGEBYSCORE', KEYS[3], '(' .. cutoff, '+inf', 'WITHSCORES', 'LIMIT', 0, limit)
if #batch == 0 then
	return cutoff
end
for i = 1, #batch, 2 do
	redis.call('ZADD', KEYS[4], ARGV[2], batch[i])
end
local target = tonumber(batch[#batch])
redis.call('INCRBY', KEYS[2], target - cutoff)
local ttl = redis.call('PTTL', KEYS[1])
if ttl > 0 then
	redis.call('PEXPIRE', KEYS[4], ttl)
end
return target
`)

// KEYS: admitted, members, line. ARGV: deadline (unix ms).
var evictScript = redis.NewScript(`
local users = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', '(' .. ARGV[1])
for _, u in ipairs(users) do
	redis.call('HDEL', KEYS[2], u)
	redis.call('ZREM', KEYS[3], u)
	redis.call('ZREM', KEYS[1], u)
end
return #users
`)
